package answer

import (
	"context"

	qaa "github.com/holmes89/qaa/lib"
)

// AnswerService fills a stored question's answer from the provider.
type AnswerService interface {
	Answer(ctx context.Context, id int64) (*qaa.QAA, error)
}

// QAARepository is the part of the record store the generator needs.
type QAARepository interface {
	Get(ctx context.Context, id int64) (*qaa.QAA, error)
	UpdateAnswer(ctx context.Context, id int64, answer string) (*qaa.QAA, error)
}

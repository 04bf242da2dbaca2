package store

import (
	"context"

	qaa "github.com/holmes89/qaa/lib"
)

// StoreService is the question and answer CRUD surface.
type StoreService interface {
	List(ctx context.Context) ([]*qaa.QAA, error)
	Get(ctx context.Context, id int64) (*qaa.QAA, error)
	Create(ctx context.Context, question string) (*qaa.QAA, error)
	UpdateQuestion(ctx context.Context, id int64, question string) (*qaa.QAA, error)
	UpdateAnswer(ctx context.Context, id int64, answer string) (*qaa.QAA, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// QAARepository persists records. Update and Delete must look the record up
// and mutate it inside one transaction, returning qaa.ErrNotFound when the id
// is absent.
type QAARepository interface {
	List(ctx context.Context) ([]*qaa.QAA, error)
	Get(ctx context.Context, id int64) (*qaa.QAA, error)
	Create(ctx context.Context, record *qaa.QAA) error
	UpdateQuestion(ctx context.Context, id int64, question string) (*qaa.QAA, error)
	UpdateAnswer(ctx context.Context, id int64, answer string) (*qaa.QAA, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

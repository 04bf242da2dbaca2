package answer

import (
	"context"
	"errors"

	qaa "github.com/holmes89/qaa/lib"
	"github.com/tmc/langchaingo/llms"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var _ AnswerService = (*answerService)(nil)

var tracer = otel.Tracer("github.com/holmes89/qaa/lib/service/answer")

var errEmptyResponse = errors.New("empty response from model")

type answerService struct {
	qaaRepo  QAARepository
	cfg      ProviderConfig
	client   llms.Model
	modelErr error
	logger   *zap.Logger
}

type Option func(*answerService)

// WithModel replaces the model built from the configuration. The
// configuration is still validated before every call.
func WithModel(client llms.Model) Option {
	return func(srv *answerService) {
		srv.client = client
	}
}

func NewAnswerService(
	qaaRepo QAARepository,
	cfg ProviderConfig,
	logger *zap.Logger,
	opts ...Option,
) AnswerService {
	srv := &answerService{
		qaaRepo: qaaRepo,
		cfg:     cfg,
		logger:  logger.Named("answer"),
	}
	for _, opt := range opts {
		opt(srv)
	}
	if err := cfg.Validate(); err != nil {
		srv.modelErr = err
	} else if srv.client == nil {
		srv.client, srv.modelErr = NewModel(cfg)
	}
	if srv.modelErr != nil {
		srv.logger.Warn("provider unavailable, ai answers will be rejected",
			zap.String("provider", cfg.Name()), zap.Error(srv.modelErr))
	}
	return srv
}

func (srv *answerService) Answer(ctx context.Context, id int64) (*qaa.QAA, error) {
	ctx, span := tracer.Start(ctx, "answer.Answer", trace.WithAttributes(attribute.Int64("qaa.id", id)))
	defer span.End()

	if err := qaa.ValidateID(id); err != nil {
		return nil, err
	}
	record, err := srv.qaaRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, qaa.ErrNotFound) {
			srv.logger.Warn("record not found", zap.Int64("id", id))
		}
		return nil, err
	}
	if srv.modelErr != nil {
		if errors.Is(srv.modelErr, qaa.ErrAuthConfig) {
			return nil, srv.modelErr
		}
		return nil, &qaa.ProviderError{Provider: srv.cfg.Name(), Err: srv.modelErr}
	}

	text, err := srv.generate(ctx, record.Question)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call failed")
		srv.logger.Error("provider call failed", zap.Int64("id", id), zap.Error(err))
		return nil, &qaa.ProviderError{Provider: srv.cfg.Name(), Err: err}
	}

	updated, err := srv.qaaRepo.UpdateAnswer(ctx, id, text)
	if err != nil {
		return nil, err
	}
	srv.logger.Info("ai answer stored", zap.Int64("id", id), zap.Int("length", len(text)))
	return updated, nil
}

func (srv *answerService) generate(ctx context.Context, question string) (string, error) {
	if srv.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.cfg.Timeout)
		defer cancel()
	}
	response, err := srv.client.GenerateContent(ctx, []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextContent{Text: question},
			},
		},
	}, llms.WithTemperature(srv.cfg.Temperature))
	if err != nil {
		return "", err
	}
	if response == nil || len(response.Choices) == 0 || response.Choices[0] == nil {
		return "", errEmptyResponse
	}
	return response.Choices[0].Content, nil
}

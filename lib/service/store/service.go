package store

import (
	"context"
	"errors"

	qaa "github.com/holmes89/qaa/lib"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var _ StoreService = (*storeService)(nil)

var tracer = otel.Tracer("github.com/holmes89/qaa/lib/service/store")

type storeService struct {
	qaaRepo QAARepository
	logger  *zap.Logger
}

func NewStoreService(
	qaaRepo QAARepository,
	logger *zap.Logger,
) StoreService {
	return &storeService{
		qaaRepo: qaaRepo,
		logger:  logger.Named("store"),
	}
}

func (srv *storeService) List(ctx context.Context) ([]*qaa.QAA, error) {
	ctx, span := tracer.Start(ctx, "store.List")
	defer span.End()

	data, err := srv.qaaRepo.List(ctx)
	if err != nil {
		srv.logger.Error("unable to list records", zap.Error(err))
		return nil, err
	}
	if data == nil {
		data = []*qaa.QAA{}
	}
	return data, nil
}

func (srv *storeService) Get(ctx context.Context, id int64) (*qaa.QAA, error) {
	ctx, span := tracer.Start(ctx, "store.Get", trace.WithAttributes(attribute.Int64("qaa.id", id)))
	defer span.End()

	if err := qaa.ValidateID(id); err != nil {
		return nil, err
	}
	data, err := srv.qaaRepo.Get(ctx, id)
	if err != nil {
		srv.logFailure("get", id, err)
		return nil, err
	}
	return data, nil
}

func (srv *storeService) Create(ctx context.Context, question string) (*qaa.QAA, error) {
	ctx, span := tracer.Start(ctx, "store.Create")
	defer span.End()

	if err := qaa.ValidateText("question", question); err != nil {
		return nil, err
	}
	record := &qaa.QAA{
		Question: question,
		Answer:   "",
	}
	if err := srv.qaaRepo.Create(ctx, record); err != nil {
		srv.logger.Error("unable to create record", zap.Error(err))
		return nil, err
	}
	srv.logger.Info("record created", zap.Int64("id", record.ID))
	return record, nil
}

func (srv *storeService) UpdateQuestion(ctx context.Context, id int64, question string) (*qaa.QAA, error) {
	ctx, span := tracer.Start(ctx, "store.UpdateQuestion", trace.WithAttributes(attribute.Int64("qaa.id", id)))
	defer span.End()

	if err := qaa.ValidateID(id); err != nil {
		return nil, err
	}
	if err := qaa.ValidateText("question", question); err != nil {
		return nil, err
	}
	data, err := srv.qaaRepo.UpdateQuestion(ctx, id, question)
	if err != nil {
		srv.logFailure("update question", id, err)
		return nil, err
	}
	srv.logger.Info("question updated", zap.Int64("id", id))
	return data, nil
}

func (srv *storeService) UpdateAnswer(ctx context.Context, id int64, answer string) (*qaa.QAA, error) {
	ctx, span := tracer.Start(ctx, "store.UpdateAnswer", trace.WithAttributes(attribute.Int64("qaa.id", id)))
	defer span.End()

	if err := qaa.ValidateID(id); err != nil {
		return nil, err
	}
	if err := qaa.ValidateText("answer", answer); err != nil {
		return nil, err
	}
	data, err := srv.qaaRepo.UpdateAnswer(ctx, id, answer)
	if err != nil {
		srv.logFailure("update answer", id, err)
		return nil, err
	}
	srv.logger.Info("answer updated", zap.Int64("id", id))
	return data, nil
}

func (srv *storeService) Delete(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "store.Delete", trace.WithAttributes(attribute.Int64("qaa.id", id)))
	defer span.End()

	if err := qaa.ValidateID(id); err != nil {
		return err
	}
	if err := srv.qaaRepo.Delete(ctx, id); err != nil {
		srv.logFailure("delete", id, err)
		return err
	}
	srv.logger.Info("record deleted", zap.Int64("id", id))
	return nil
}

func (srv *storeService) DeleteAll(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "store.DeleteAll")
	defer span.End()

	n, err := srv.qaaRepo.DeleteAll(ctx)
	if err != nil {
		srv.logger.Error("unable to delete records", zap.Error(err))
		return err
	}
	srv.logger.Info("all records deleted", zap.Int64("count", n))
	return nil
}

func (srv *storeService) logFailure(op string, id int64, err error) {
	if errors.Is(err, qaa.ErrNotFound) {
		srv.logger.Warn("record not found", zap.String("op", op), zap.Int64("id", id))
		return
	}
	srv.logger.Error("record operation failed", zap.String("op", op), zap.Int64("id", id), zap.Error(err))
}

package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	qaa "github.com/holmes89/qaa/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockQAARepository is a mock type for the QAARepository interface
type MockQAARepository struct {
	mock.Mock
}

func (m *MockQAARepository) List(ctx context.Context) ([]*qaa.QAA, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*qaa.QAA), args.Error(1)
}

func (m *MockQAARepository) Get(ctx context.Context, id int64) (*qaa.QAA, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qaa.QAA), args.Error(1)
}

func (m *MockQAARepository) Create(ctx context.Context, record *qaa.QAA) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockQAARepository) UpdateQuestion(ctx context.Context, id int64, question string) (*qaa.QAA, error) {
	args := m.Called(ctx, id, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qaa.QAA), args.Error(1)
}

func (m *MockQAARepository) UpdateAnswer(ctx context.Context, id int64, answer string) (*qaa.QAA, error) {
	args := m.Called(ctx, id, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qaa.QAA), args.Error(1)
}

func (m *MockQAARepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQAARepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo *MockQAARepository) StoreService {
	return NewStoreService(repo, zap.NewNop())
}

func TestStoreService_Create(t *testing.T) {
	repo := new(MockQAARepository)
	srv := newTestService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *qaa.QAA) bool {
		return r.Question == "What is 2+2?" && r.Answer == ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*qaa.QAA).ID = 1
	}).Return(nil).Once()

	record, err := srv.Create(context.Background(), "What is 2+2?")
	require.NoError(t, err)
	assert.Equal(t, &qaa.QAA{ID: 1, Question: "What is 2+2?", Answer: ""}, record)
	repo.AssertExpectations(t)
}

func TestStoreService_CreateRejectsInvalidLength(t *testing.T) {
	repo := new(MockQAARepository)
	srv := newTestService(repo)

	for _, question := range []string{"", strings.Repeat("q", qaa.MaxTextLength+1)} {
		_, err := srv.Create(context.Background(), question)
		assert.ErrorIs(t, err, qaa.ErrValidation)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStoreService_ListEmpty(t *testing.T) {
	repo := new(MockQAARepository)
	srv := newTestService(repo)
	repo.On("List", mock.Anything).Return(nil, nil).Once()

	data, err := srv.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestStoreService_NotFoundPropagates(t *testing.T) {
	repo := new(MockQAARepository)
	srv := newTestService(repo)
	ctx := context.Background()

	repo.On("Get", mock.Anything, int64(42)).Return(nil, qaa.ErrNotFound)
	repo.On("UpdateQuestion", mock.Anything, int64(42), "new").Return(nil, qaa.ErrNotFound)
	repo.On("UpdateAnswer", mock.Anything, int64(42), "new").Return(nil, qaa.ErrNotFound)
	repo.On("Delete", mock.Anything, int64(42)).Return(qaa.ErrNotFound)

	_, err := srv.Get(ctx, 42)
	assert.ErrorIs(t, err, qaa.ErrNotFound)
	_, err = srv.UpdateQuestion(ctx, 42, "new")
	assert.ErrorIs(t, err, qaa.ErrNotFound)
	_, err = srv.UpdateAnswer(ctx, 42, "new")
	assert.ErrorIs(t, err, qaa.ErrNotFound)
	assert.ErrorIs(t, srv.Delete(ctx, 42), qaa.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestStoreService_RejectsNonPositiveID(t *testing.T) {
	repo := new(MockQAARepository)
	srv := newTestService(repo)
	ctx := context.Background()

	_, err := srv.Get(ctx, 0)
	assert.ErrorIs(t, err, qaa.ErrValidation)
	_, err = srv.UpdateAnswer(ctx, -1, "a")
	assert.ErrorIs(t, err, qaa.ErrValidation)
	assert.ErrorIs(t, srv.Delete(ctx, 0), qaa.ErrValidation)
	repo.AssertExpectations(t)
}

func TestStoreService_UpdateAnswer(t *testing.T) {
	repo := new(MockQAARepository)
	srv := newTestService(repo)
	updated := &qaa.QAA{ID: 1, Question: "What is 2+2?", Answer: "4"}
	repo.On("UpdateAnswer", mock.Anything, int64(1), "4").Return(updated, nil).Once()

	record, err := srv.UpdateAnswer(context.Background(), 1, "4")
	require.NoError(t, err)
	assert.Equal(t, updated, record)

	_, err = srv.UpdateAnswer(context.Background(), 1, "")
	assert.ErrorIs(t, err, qaa.ErrValidation)
	repo.AssertExpectations(t)
}

func TestStoreService_DeleteAll(t *testing.T) {
	repo := new(MockQAARepository)
	srv := newTestService(repo)
	repo.On("DeleteAll", mock.Anything).Return(int64(3), nil).Once()
	assert.NoError(t, srv.DeleteAll(context.Background()))

	repo.On("DeleteAll", mock.Anything).Return(int64(0), errors.New("connection reset")).Once()
	assert.Error(t, srv.DeleteAll(context.Background()))
	repo.AssertExpectations(t)
}

package testutil

import (
	"context"

	"easywords/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock for the dictionary service client
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Login(ctx context.Context, username, password string) (domain.Credentials, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.Credentials), args.Error(1)
}

func (m *MockAPI) Register(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *MockAPI) ListDictionaries(ctx context.Context, token string) ([]domain.Dictionary, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dictionary), args.Error(1)
}

func (m *MockAPI) CreateDictionary(ctx context.Context, name, token string) (*domain.Dictionary, error) {
	args := m.Called(ctx, name, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dictionary), args.Error(1)
}

func (m *MockAPI) UpdateDictionary(ctx context.Context, id int, name, token string) (*domain.Dictionary, error) {
	args := m.Called(ctx, id, name, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dictionary), args.Error(1)
}

func (m *MockAPI) DeleteDictionary(ctx context.Context, id int, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockAPI) ListWords(ctx context.Context, dictionaryID int, token string) ([]domain.Word, error) {
	args := m.Called(ctx, dictionaryID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockAPI) ListDictionaryWords(ctx context.Context, dictionaryID int, token string) ([]domain.Word, error) {
	args := m.Called(ctx, dictionaryID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockAPI) CreateWord(ctx context.Context, dictionaryID int, word, translation, token string) (*domain.Word, error) {
	args := m.Called(ctx, dictionaryID, word, translation, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockAPI) UpdateWord(ctx context.Context, dictionaryID, wordID int, word domain.Word, token string) (*domain.Word, error) {
	args := m.Called(ctx, dictionaryID, wordID, word, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockAPI) DeleteWord(ctx context.Context, dictionaryID, wordID int, token string) error {
	args := m.Called(ctx, dictionaryID, wordID, token)
	return args.Error(0)
}

// MockStateRepository is a mock for StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStateRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

package testutil

import (
	"context"
	"sync"

	"easywords/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDictionary creates a test dictionary
func NewTestDictionary(id int, name string) domain.Dictionary {
	return domain.Dictionary{
		ID:        id,
		Name:      name,
		CreatedAt: "2024-01-01T00:00:00Z",
		Owner:     "alice",
	}
}

// NewTestWord creates a test word
func NewTestWord(id, dictionaryID int, word, translation string) domain.Word {
	return domain.Word{
		ID:           id,
		DictionaryID: dictionaryID,
		Word:         word,
		Translation:  translation,
		CreatedAt:    "2024-01-01T00:00:00Z",
	}
}

// MemoryState is an in-memory StateRepository
type MemoryState struct {
	mu     sync.Mutex
	Values map[string]string
}

// NewMemoryState creates a MemoryState seeded with values
func NewMemoryState(values map[string]string) *MemoryState {
	m := &MemoryState{Values: make(map[string]string)}
	for k, v := range values {
		m.Values[k] = v
	}
	return m
}

func (m *MemoryState) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Values[key]
	return v, ok, nil
}

func (m *MemoryState) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Values[key] = value
	return nil
}

func (m *MemoryState) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Values, key)
	return nil
}

// Has reports whether key is stored
func (m *MemoryState) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Values[key]
	return ok
}

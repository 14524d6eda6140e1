package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"easywords/internal/domain"
	"easywords/internal/repository"

	"go.uber.org/zap"
)

// WordAPI is the word part of the dictionary service client
type WordAPI interface {
	ListDictionaryWords(ctx context.Context, dictionaryID int, token string) ([]domain.Word, error)
	CreateWord(ctx context.Context, dictionaryID int, word, translation, token string) (*domain.Word, error)
	UpdateWord(ctx context.Context, dictionaryID, wordID int, word domain.Word, token string) (*domain.Word, error)
	DeleteWord(ctx context.Context, dictionaryID, wordID int, token string) error
}

// WordService handles word-related operations
type WordService struct {
	api    WordAPI
	store  repository.StateRepository
	logger *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(api WordAPI, store repository.StateRepository, logger *zap.Logger) *WordService {
	return &WordService{api: api, store: store, logger: logger}
}

// List returns the words of a dictionary
func (s *WordService) List(ctx context.Context, dictionaryID int) ([]domain.Word, error) {
	token, err := accessToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.api.ListDictionaryWords(ctx, dictionaryID, token)
}

// SaveWordPair adds a word-translation pair to a dictionary
func (s *WordService) SaveWordPair(ctx context.Context, dictionaryID int, word, translation string) (*domain.Word, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return nil, fmt.Errorf("word and translation cannot be empty")
	}
	if dictionaryID == 0 {
		return nil, fmt.Errorf("no dictionary selected")
	}

	token, err := accessToken(ctx, s.store)
	if err != nil {
		return nil, err
	}

	w, err := s.api.CreateWord(ctx, dictionaryID, word, translation, token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Word pair saved",
		zap.Int("dictionary_id", dictionaryID),
		zap.String("word", word),
		zap.String("translation", translation),
	)
	return w, nil
}

// Update replaces a word record
func (s *WordService) Update(ctx context.Context, word domain.Word) (*domain.Word, error) {
	if strings.TrimSpace(word.Word) == "" || strings.TrimSpace(word.Translation) == "" {
		return nil, fmt.Errorf("word and translation cannot be empty")
	}

	token, err := accessToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateWord(ctx, word.DictionaryID, word.ID, word, token)
}

// Delete removes a word from a dictionary
func (s *WordService) Delete(ctx context.Context, dictionaryID, wordID int) error {
	token, err := accessToken(ctx, s.store)
	if err != nil {
		return err
	}
	return s.api.DeleteWord(ctx, dictionaryID, wordID, token)
}

// RandomPair picks a random word from words, nil when words is empty
func (s *WordService) RandomPair(words []domain.Word) *domain.Word {
	if len(words) == 0 {
		return nil
	}
	w := words[rand.Intn(len(words))]
	return &w
}

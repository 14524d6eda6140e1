package service

import (
	"context"
	"fmt"
	"strings"

	"easywords/internal/domain"
	"easywords/internal/repository"

	"go.uber.org/zap"
)

// DictionaryAPI is the dictionary part of the dictionary service client
type DictionaryAPI interface {
	ListDictionaries(ctx context.Context, token string) ([]domain.Dictionary, error)
	CreateDictionary(ctx context.Context, name, token string) (*domain.Dictionary, error)
	UpdateDictionary(ctx context.Context, id int, name, token string) (*domain.Dictionary, error)
	DeleteDictionary(ctx context.Context, id int, token string) error
}

// DictionaryService handles dictionary operations with the persisted token
type DictionaryService struct {
	api    DictionaryAPI
	store  repository.StateRepository
	logger *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(api DictionaryAPI, store repository.StateRepository, logger *zap.Logger) *DictionaryService {
	return &DictionaryService{api: api, store: store, logger: logger}
}

// List returns all dictionaries of the user
func (s *DictionaryService) List(ctx context.Context) ([]domain.Dictionary, error) {
	token, err := accessToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.api.ListDictionaries(ctx, token)
}

// Create creates a dictionary
func (s *DictionaryService) Create(ctx context.Context, name string) (*domain.Dictionary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("dictionary name cannot be empty")
	}

	token, err := accessToken(ctx, s.store)
	if err != nil {
		return nil, err
	}

	d, err := s.api.CreateDictionary(ctx, name, token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dictionary created", zap.Int("dictionary_id", d.ID), zap.String("name", d.Name))
	return d, nil
}

// Rename replaces the dictionary name
func (s *DictionaryService) Rename(ctx context.Context, id int, name string) (*domain.Dictionary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("dictionary name cannot be empty")
	}

	token, err := accessToken(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateDictionary(ctx, id, name, token)
}

// Delete deletes a dictionary
func (s *DictionaryService) Delete(ctx context.Context, id int) error {
	token, err := accessToken(ctx, s.store)
	if err != nil {
		return err
	}

	if err := s.api.DeleteDictionary(ctx, id, token); err != nil {
		return err
	}

	s.logger.Info("Dictionary deleted", zap.Int("dictionary_id", id))
	return nil
}

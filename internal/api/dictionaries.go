package api

import (
	"context"
	"fmt"
	"net/http"

	"easywords/internal/domain"
)

type dictionaryRequest struct {
	Name string `json:"name"`
}

// ListDictionaries returns all dictionaries owned by the authenticated user
func (c *Client) ListDictionaries(ctx context.Context, token string) ([]domain.Dictionary, error) {
	var dictionaries []domain.Dictionary
	if err := c.DoJSON(ctx, http.MethodGet, "/dictionaries/", nil, token, &dictionaries); err != nil {
		return nil, err
	}
	return dictionaries, nil
}

// CreateDictionary creates a dictionary and returns it with server-assigned fields
func (c *Client) CreateDictionary(ctx context.Context, name, token string) (*domain.Dictionary, error) {
	var d domain.Dictionary
	if err := c.DoJSON(ctx, http.MethodPost, "/dictionaries/", dictionaryRequest{Name: name}, token, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDictionary replaces the dictionary name
func (c *Client) UpdateDictionary(ctx context.Context, id int, name, token string) (*domain.Dictionary, error) {
	var d domain.Dictionary
	if err := c.DoJSON(ctx, http.MethodPut, dictionaryPath(id), dictionaryRequest{Name: name}, token, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDictionary deletes the dictionary
func (c *Client) DeleteDictionary(ctx context.Context, id int, token string) error {
	_, err := c.Do(ctx, http.MethodDelete, dictionaryPath(id), nil, token)
	return err
}

func dictionaryPath(id int) string {
	return fmt.Sprintf("/dictionaries/%d/", id)
}

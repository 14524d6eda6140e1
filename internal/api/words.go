package api

import (
	"context"
	"fmt"
	"net/http"

	"easywords/internal/domain"
)

// ListDictionaryWords returns the words of a dictionary via the scoped endpoint
func (c *Client) ListDictionaryWords(ctx context.Context, dictionaryID int, token string) ([]domain.Word, error) {
	var words []domain.Word
	if err := c.DoJSON(ctx, http.MethodGet, wordsPath(dictionaryID), nil, token, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// ListWords returns words via the query form /words/?dictionary={id}.
// The server is not trusted to filter, callers filter the result themselves.
func (c *Client) ListWords(ctx context.Context, dictionaryID int, token string) ([]domain.Word, error) {
	var words []domain.Word
	endpoint := fmt.Sprintf("/words/?dictionary=%d", dictionaryID)
	if err := c.DoJSON(ctx, http.MethodGet, endpoint, nil, token, &words); err != nil {
		return nil, err
	}
	return words, nil
}

// CreateWord adds a word-translation pair to a dictionary
func (c *Client) CreateWord(ctx context.Context, dictionaryID int, word, translation, token string) (*domain.Word, error) {
	var w domain.Word
	payload := domain.WordPair{Word: word, Translation: translation}
	if err := c.DoJSON(ctx, http.MethodPost, wordsPath(dictionaryID), payload, token, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWord replaces a word record
func (c *Client) UpdateWord(ctx context.Context, dictionaryID, wordID int, word domain.Word, token string) (*domain.Word, error) {
	var w domain.Word
	if err := c.DoJSON(ctx, http.MethodPut, wordPath(dictionaryID, wordID), word, token, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWord deletes a word from a dictionary
func (c *Client) DeleteWord(ctx context.Context, dictionaryID, wordID int, token string) error {
	_, err := c.Do(ctx, http.MethodDelete, wordPath(dictionaryID, wordID), nil, token)
	return err
}

func wordsPath(dictionaryID int) string {
	return fmt.Sprintf("/dictionaries/%d/words/", dictionaryID)
}

func wordPath(dictionaryID, wordID int) string {
	return fmt.Sprintf("/dictionaries/%d/words/%d/", dictionaryID, wordID)
}

package service

import (
	"context"
	"fmt"
	"testing"

	"easywords/internal/domain"
	"easywords/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWordService(values map[string]string) (*WordService, *testutil.MockAPI) {
	mockAPI := new(testutil.MockAPI)
	return NewWordService(mockAPI, testutil.NewMemoryState(values), testutil.NewTestLogger()), mockAPI
}

func TestWordService_SaveWordPair(t *testing.T) {
	tests := []struct {
		name          string
		dictionaryID  int
		word          string
		translation   string
		mockError     error
		expectCall    bool
		expectedError bool
	}{
		{
			name:         "valid word pair",
			dictionaryID: 3,
			word:         "hello",
			translation:  "привет",
			expectCall:   true,
		},
		{
			name:          "empty word",
			dictionaryID:  3,
			word:          "",
			translation:   "привет",
			expectedError: true,
		},
		{
			name:          "empty translation",
			dictionaryID:  3,
			word:          "hello",
			translation:   " ",
			expectedError: true,
		},
		{
			name:          "no dictionary selected",
			dictionaryID:  0,
			word:          "hello",
			translation:   "привет",
			expectedError: true,
		},
		{
			name:          "server error",
			dictionaryID:  3,
			word:          "hello",
			translation:   "привет",
			mockError:     fmt.Errorf("server error"),
			expectCall:    true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockAPI := newWordService(map[string]string{domain.KeyAccessToken: "tok"})

			if tt.expectCall {
				if tt.mockError != nil {
					mockAPI.On("CreateWord", mock.Anything, tt.dictionaryID, tt.word, tt.translation, "tok").Return(nil, tt.mockError)
				} else {
					w := testutil.NewTestWord(1, tt.dictionaryID, tt.word, tt.translation)
					mockAPI.On("CreateWord", mock.Anything, tt.dictionaryID, tt.word, tt.translation, "tok").Return(&w, nil)
				}
			}

			w, err := service.SaveWordPair(context.Background(), tt.dictionaryID, tt.word, tt.translation)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, w)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.word, w.Word)
			}

			mockAPI.AssertExpectations(t)
		})
	}
}

func TestWordService_List(t *testing.T) {
	service, mockAPI := newWordService(map[string]string{domain.KeyAccessToken: "tok"})
	expected := []domain.Word{testutil.NewTestWord(1, 3, "hello", "привет")}
	mockAPI.On("ListDictionaryWords", mock.Anything, 3, "tok").Return(expected, nil)

	words, err := service.List(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, expected, words)
	mockAPI.AssertExpectations(t)
}

func TestWordService_Update(t *testing.T) {
	service, mockAPI := newWordService(map[string]string{domain.KeyAccessToken: "tok"})
	word := testutil.NewTestWord(9, 3, "cat", "кошка")
	mockAPI.On("UpdateWord", mock.Anything, 3, 9, word, "tok").Return(&word, nil)

	updated, err := service.Update(context.Background(), word)

	assert.NoError(t, err)
	assert.Equal(t, "кошка", updated.Translation)

	_, err = service.Update(context.Background(), domain.Word{ID: 9, DictionaryID: 3})
	assert.Error(t, err)

	mockAPI.AssertExpectations(t)
}

func TestWordService_Delete(t *testing.T) {
	service, mockAPI := newWordService(map[string]string{domain.KeyAccessToken: "tok"})
	mockAPI.On("DeleteWord", mock.Anything, 3, 9, "tok").Return(nil)

	err := service.Delete(context.Background(), 3, 9)

	assert.NoError(t, err)
	mockAPI.AssertExpectations(t)
}

func TestWordService_Delete_NotAuthorized(t *testing.T) {
	service, mockAPI := newWordService(nil)

	err := service.Delete(context.Background(), 3, 9)

	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	mockAPI.AssertNotCalled(t, "DeleteWord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWordService_RandomPair(t *testing.T) {
	service, _ := newWordService(nil)

	assert.Nil(t, service.RandomPair(nil))

	words := []domain.Word{
		testutil.NewTestWord(1, 3, "hello", "привет"),
		testutil.NewTestWord(2, 3, "world", "мир"),
	}
	for i := 0; i < 10; i++ {
		w := service.RandomPair(words)
		assert.NotNil(t, w)
		assert.Contains(t, []int{1, 2}, w.ID)
	}
}

package service

import (
	"context"
	"testing"

	"easywords/internal/api"
	"easywords/internal/domain"
	"easywords/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDictionaryService(values map[string]string) (*DictionaryService, *testutil.MockAPI) {
	mockAPI := new(testutil.MockAPI)
	return NewDictionaryService(mockAPI, testutil.NewMemoryState(values), testutil.NewTestLogger()), mockAPI
}

func TestDictionaryService_List(t *testing.T) {
	service, mockAPI := newDictionaryService(map[string]string{domain.KeyAccessToken: "tok"})
	expected := []domain.Dictionary{testutil.NewTestDictionary(1, "Basics")}
	mockAPI.On("ListDictionaries", mock.Anything, "tok").Return(expected, nil)

	dictionaries, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, dictionaries)
	mockAPI.AssertExpectations(t)
}

func TestDictionaryService_List_NotAuthorized(t *testing.T) {
	service, mockAPI := newDictionaryService(nil)

	_, err := service.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	mockAPI.AssertNotCalled(t, "ListDictionaries", mock.Anything, mock.Anything)
}

func TestDictionaryService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedName  string
		mockError     error
		expectedError bool
	}{
		{
			name:         "valid name",
			input:        "Verbs",
			expectedName: "Verbs",
		},
		{
			name:         "trimmed name",
			input:        "  Verbs ",
			expectedName: "Verbs",
		},
		{
			name:          "empty name",
			input:         "   ",
			expectedError: true,
		},
		{
			name:          "server error",
			input:         "Verbs",
			expectedName:  "Verbs",
			mockError:     &api.Error{Message: "dictionary with this name already exists."},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockAPI := newDictionaryService(map[string]string{domain.KeyAccessToken: "tok"})

			if tt.expectedName != "" {
				if tt.mockError != nil {
					mockAPI.On("CreateDictionary", mock.Anything, tt.expectedName, "tok").Return(nil, tt.mockError)
				} else {
					d := testutil.NewTestDictionary(7, tt.expectedName)
					mockAPI.On("CreateDictionary", mock.Anything, tt.expectedName, "tok").Return(&d, nil)
				}
			}

			d, err := service.Create(context.Background(), tt.input)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, d)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, d.ID)
			}
			mockAPI.AssertExpectations(t)
		})
	}
}

func TestDictionaryService_Rename(t *testing.T) {
	service, mockAPI := newDictionaryService(map[string]string{domain.KeyAccessToken: "tok"})
	d := testutil.NewTestDictionary(7, "Irregular verbs")
	mockAPI.On("UpdateDictionary", mock.Anything, 7, "Irregular verbs", "tok").Return(&d, nil)

	renamed, err := service.Rename(context.Background(), 7, "Irregular verbs")

	assert.NoError(t, err)
	assert.Equal(t, "Irregular verbs", renamed.Name)

	_, err = service.Rename(context.Background(), 7, "")
	assert.Error(t, err)

	mockAPI.AssertExpectations(t)
}

func TestDictionaryService_Delete(t *testing.T) {
	service, mockAPI := newDictionaryService(map[string]string{domain.KeyAccessToken: "tok"})
	mockAPI.On("DeleteDictionary", mock.Anything, 7, "tok").Return(nil).Once()
	mockAPI.On("DeleteDictionary", mock.Anything, 8, "tok").Return(&api.Error{Message: "Not found."}).Once()

	assert.NoError(t, service.Delete(context.Background(), 7))
	assert.EqualError(t, service.Delete(context.Background(), 8), "Not found.")

	mockAPI.AssertExpectations(t)
}

package service

import (
	"context"
	"fmt"
	"testing"

	"easywords/internal/api"
	"easywords/internal/domain"
	"easywords/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		password       string
		mockCreds      domain.Credentials
		mockError      error
		expectedStored map[string]string
		expectedError  bool
	}{
		{
			name:      "valid credentials",
			username:  "alice",
			password:  "secret",
			mockCreds: domain.Credentials{Access: "acc", Refresh: "ref"},
			expectedStored: map[string]string{
				domain.KeyAccessToken:  "acc",
				domain.KeyRefreshToken: "ref",
			},
		},
		{
			name:           "invalid credentials",
			username:       "alice",
			password:       "wrong",
			mockError:      &api.Error{Message: "No active account found with the given credentials"},
			expectedStored: map[string]string{},
			expectedError:  true,
		},
		{
			name:           "empty password",
			username:       "alice",
			password:       "",
			expectedStored: map[string]string{},
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(testutil.MockAPI)
			store := testutil.NewMemoryState(nil)

			if tt.password != "" {
				mockAPI.On("Login", mock.Anything, tt.username, tt.password).Return(tt.mockCreds, tt.mockError)
			}

			service := NewAuthService(mockAPI, store, testutil.NewTestLogger())

			creds, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockCreds, creds)
			}
			assert.Equal(t, tt.expectedStored, store.Values)

			mockAPI.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	mockAPI := new(testutil.MockAPI)
	mockAPI.On("Register", mock.Anything, "alice", "secret").Return(nil).Once()
	mockAPI.On("Register", mock.Anything, "bob", "secret").Return(&api.Error{Message: "Username already taken"}).Once()

	service := NewAuthService(mockAPI, testutil.NewMemoryState(nil), testutil.NewTestLogger())

	assert.NoError(t, service.Register(context.Background(), "alice", "secret"))
	assert.EqualError(t, service.Register(context.Background(), "bob", "secret"), "Username already taken")
	assert.Error(t, service.Register(context.Background(), "", "secret"))

	mockAPI.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	mockAPI := new(testutil.MockAPI)
	store := testutil.NewMemoryState(map[string]string{
		domain.KeyAccessToken:      "acc",
		domain.KeyRefreshToken:     "ref",
		domain.KeyLastDictionaryID: "2",
	})

	service := NewAuthService(mockAPI, store, testutil.NewTestLogger())

	err := service.Logout(context.Background())

	assert.NoError(t, err)
	assert.False(t, store.Has(domain.KeyAccessToken))
	assert.True(t, store.Has(domain.KeyRefreshToken))
	assert.True(t, store.Has(domain.KeyLastDictionaryID))
	mockAPI.AssertExpectations(t)
}

func TestAuthService_Token(t *testing.T) {
	tests := []struct {
		name          string
		mockValue     string
		mockOK        bool
		mockError     error
		expectedToken string
		expectedError error
	}{
		{
			name:          "token stored",
			mockValue:     "acc",
			mockOK:        true,
			expectedToken: "acc",
		},
		{
			name:          "no token",
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:          "empty token",
			mockOK:        true,
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:          "storage error",
			mockError:     fmt.Errorf("db error"),
			expectedError: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(testutil.MockStateRepository)
			store.On("Get", mock.Anything, domain.KeyAccessToken).Return(tt.mockValue, tt.mockOK, tt.mockError)

			service := NewAuthService(new(testutil.MockAPI), store, testutil.NewTestLogger())

			token, err := service.Token(context.Background())

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
			store.AssertExpectations(t)
		})
	}
}

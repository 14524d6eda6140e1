package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStateRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedValue string
		expectedOK    bool
		expectedError bool
	}{
		{
			name:          "value exists",
			key:           "accessToken",
			mockRows:      sqlmock.NewRows([]string{"value"}).AddRow("tok"),
			expectedValue: "tok",
			expectedOK:    true,
		},
		{
			name:       "key not exists",
			key:        "lastDictionaryId",
			mockError:  sql.ErrNoRows,
			expectedOK: false,
		},
		{
			name:          "database error",
			key:           "accessToken",
			mockError:     fmt.Errorf("connection reset"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewStateRepo(db, "123")

			query := "SELECT value FROM client_state WHERE namespace = \\$1 AND key = \\$2"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs("123", tt.key).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs("123", tt.key).WillReturnRows(tt.mockRows)
			}

			value, ok, err := repo.Get(context.Background(), tt.key)

			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, ok)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOK, ok)
				assert.Equal(t, tt.expectedValue, value)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStateRepo_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db, "123")

	mock.ExpectExec("INSERT INTO client_state").
		WithArgs("123", "lastDictionaryId", "2").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Set(context.Background(), "lastDictionaryId", "2")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Set_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db, "123")

	mock.ExpectExec("INSERT INTO client_state").
		WithArgs("123", "accessToken", "tok").
		WillReturnError(fmt.Errorf("db error"))

	err = repo.Set(context.Background(), "accessToken", "tok")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accessToken")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db, "123")

	mock.ExpectExec("DELETE FROM client_state WHERE namespace = \\$1 AND key = \\$2").
		WithArgs("123", "accessToken").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), "accessToken")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

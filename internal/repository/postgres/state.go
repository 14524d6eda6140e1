package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// StateRepo implements repository.StateRepository on the client_state table.
// All keys are scoped to a namespace, the bot uses the Telegram user id.
type StateRepo struct {
	db        *sql.DB
	namespace string
}

// NewStateRepo creates a new state repository for the given namespace
func NewStateRepo(db *sql.DB, namespace string) *StateRepo {
	return &StateRepo{db: db, namespace: namespace}
}

// Get returns the stored value for key
func (r *StateRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM client_state WHERE namespace = $1 AND key = $2`
	err := r.db.QueryRowContext(ctx, query, r.namespace, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get state[%s]: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *StateRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO client_state (namespace, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, r.namespace, key, value); err != nil {
		return fmt.Errorf("failed to set state[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (r *StateRepo) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM client_state WHERE namespace = $1 AND key = $2`
	if _, err := r.db.ExecContext(ctx, query, r.namespace, key); err != nil {
		return fmt.Errorf("failed to delete state[%s]: %w", key, err)
	}
	return nil
}

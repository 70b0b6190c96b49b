package document_counter

import (
	"context"
	"fmt"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// NextValue increments the counter of scope and returns the new value in one
// statement. Called inside the create transaction, so a rollback releases the number.
func (r *Repository) NextValue(ctx context.Context, scope string) (int64, error) {
	query := `INSERT INTO document_counters (scope, value)
		VALUES ($1, 1)
		ON CONFLICT (scope) DO UPDATE SET value = document_counters.value + 1
		RETURNING value`

	var value int64
	if err := r.querier.QueryRow(ctx, query, scope).Scan(&value); err != nil {
		return 0, fmt.Errorf("unexpected document counter repository nextvalue error: %w", err)
	}
	return value, nil
}

package configuration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"builty-service/internal/entities"
	"builty-service/internal/repository"
	"builty-service/internal/service/configuration"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entryColumns = `id, key, value, data_type, category, description, is_public, status,
	published_at, published_by, updated_by, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByKey(ctx context.Context, key string) (*entities.ConfigEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM config_entries
		WHERE key = $1`

	var entryDB ConfigEntryDB
	err := r.querier.QueryRow(ctx, query, key).Scan(entryDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, configuration.ErrConfigNotFound
		}
		return nil, fmt.Errorf("unexpected config repository getbykey error: %w", err)
	}

	return ToDomain(&entryDB), nil
}

// Upsert always leaves the entry in draft, published_at/published_by survive
// so the audit trail of the last publication is kept.
func (r *Repository) Upsert(ctx context.Context, draft entities.ConfigDraft) (*entities.ConfigEntry, error) {
	query := `INSERT INTO config_entries
			(key, value, data_type, category, description, is_public, status, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'draft', $7, $8, $8)
		ON CONFLICT (key) DO UPDATE SET
			value       = EXCLUDED.value,
			data_type   = EXCLUDED.data_type,
			category    = EXCLUDED.category,
			description = EXCLUDED.description,
			is_public   = EXCLUDED.is_public,
			status      = 'draft',
			updated_by  = EXCLUDED.updated_by,
			updated_at  = EXCLUDED.updated_at
		RETURNING ` + entryColumns

	var entryDB ConfigEntryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		draft.Key,
		draft.Value,
		draft.Metadata.DataType.String(),
		draft.Metadata.Category,
		draft.Metadata.Description,
		draft.Metadata.IsPublic,
		draft.UpdatedBy,
		draft.UpdatedAt,
	).Scan(entryDB.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, configuration.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected config repository upsert error: %w", err)
	}

	return ToDomain(&entryDB), nil
}

func (r *Repository) SetStatus(
	ctx context.Context,
	key string,
	status entities.LifecycleStatus,
	actorID int64,
	at time.Time,
) (*entities.ConfigEntry, error) {
	builder := qb.
		Update("config_entries").
		Set("status", status.String()).
		Set("updated_by", actorID).
		Set("updated_at", at)

	if status == entities.StatusPublished {
		builder = builder.
			Set("published_at", at).
			Set("published_by", actorID)
	}

	query, args, err := builder.
		Where(sq.Eq{"key": key}).
		Suffix("RETURNING " + entryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected config repository setstatus error: %w", err)
	}

	var entryDB ConfigEntryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(entryDB.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, configuration.ErrConfigNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, configuration.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected config repository setstatus error: %w", err)
	}

	return ToDomain(&entryDB), nil
}

func (r *Repository) ListPublished(ctx context.Context, onlyPublic bool) ([]entities.ConfigEntry, error) {
	builder := qb.
		Select(entryColumns).
		From("config_entries").
		Where(sq.Eq{"status": entities.StatusPublished.String()}).
		OrderBy("category", "key")

	if onlyPublic {
		builder = builder.Where(sq.Eq{"is_public": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected config repository listpublished error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected config repository listpublished error: %w", err)
	}
	defer rows.Close()

	entriesDB := make([]ConfigEntryDB, 0, 16)
	for rows.Next() {
		var entryDB ConfigEntryDB
		if err := rows.Scan(entryDB.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected config repository listpublished error: %w", err)
		}
		entriesDB = append(entriesDB, entryDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected config repository listpublished error: %w", err)
	}

	return ToDomainList(entriesDB), nil
}

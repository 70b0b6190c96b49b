package configuration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"builty-service/internal/entities"
	"builty-service/pkg/logger"
	"builty-service/pkg/tx"
)

type Service struct {
	repository Repository
	txManager  TxManager
	log        serviceLogger
	now        func() time.Time
}

func New(repository Repository, txManager TxManager, log serviceLogger) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Get(ctx context.Context, key string) (*entities.ConfigEntry, error) {
	if !isValidKey(key) {
		return nil, ErrInvalidConfigKey
	}

	entry, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	return entry, nil
}

// GetValue returns the decoded published value or nil when the key is missing,
// not published or holds a value that doesn't decode as its declared type.
func (s *Service) GetValue(ctx context.Context, key string) (any, error) {
	entry, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get config value: %w", err)
	}

	if entry.Status != entities.StatusPublished {
		return nil, nil
	}

	value, err := DecodeValue(entry.DataType, entry.Value)
	if err != nil {
		s.log.Warn("malformed config value",
			logger.NewField("key", key),
			logger.NewField("data_type", entry.DataType.String()),
			logger.NewField("error", err),
		)
		return nil, nil
	}
	return value, nil
}

// SetDraft creates the entry or overwrites it, always leaving it in draft status.
func (s *Service) SetDraft(ctx context.Context, key, value string, metadata entities.ConfigMetadata, actorID int64) (*entities.ConfigEntry, error) {
	if !isValidKey(key) {
		return nil, ErrInvalidConfigKey
	}
	if !metadata.DataType.IsValid() {
		return nil, ErrInvalidConfigDataType
	}
	if _, err := DecodeValue(metadata.DataType, value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfigValue, err)
	}

	metadata.Category = strings.TrimSpace(metadata.Category)
	if metadata.Category == "" {
		metadata.Category = "general"
	}

	draft := entities.ConfigDraft{
		Key:       key,
		Value:     value,
		Metadata:  metadata,
		UpdatedBy: actorID,
		UpdatedAt: s.now(),
	}

	var entry *entities.ConfigEntry
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.repository.Upsert(ctx, draft)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set config draft: %w", mapTxError(err))
	}

	s.log.Info("config draft saved",
		logger.NewField("key", key),
		logger.NewField("actor_id", actorID),
	)
	return entry, nil
}

func (s *Service) Publish(ctx context.Context, key string, actorID int64) (*entities.ConfigEntry, error) {
	return s.transition(ctx, key, entities.StatusPublished, actorID)
}

// Unpublish returns the entry to draft.
func (s *Service) Unpublish(ctx context.Context, key string, actorID int64) (*entities.ConfigEntry, error) {
	return s.transition(ctx, key, entities.StatusDraft, actorID)
}

func (s *Service) Archive(ctx context.Context, key string, actorID int64) (*entities.ConfigEntry, error) {
	return s.transition(ctx, key, entities.StatusArchived, actorID)
}

func (s *Service) transition(ctx context.Context, key string, target entities.LifecycleStatus, actorID int64) (*entities.ConfigEntry, error) {
	if !isValidKey(key) {
		return nil, ErrInvalidConfigKey
	}

	var entry *entities.ConfigEntry
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByKey(ctx, key)
		if err != nil {
			return err
		}

		if current.Status == target {
			entry = current
			return nil
		}
		if current.Status == entities.StatusArchived && target == entities.StatusPublished {
			return ErrConfigArchived
		}

		entry, err = s.repository.SetStatus(ctx, key, target, actorID, s.now())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set config status %s: %w", target, mapTxError(err))
	}

	s.log.Info("config status changed",
		logger.NewField("key", key),
		logger.NewField("status", target.String()),
		logger.NewField("actor_id", actorID),
	)
	return entry, nil
}

// ListByCategory groups every published entry by category, both levels sorted.
func (s *Service) ListByCategory(ctx context.Context) ([]entities.ConfigCategory, error) {
	entries, err := s.repository.ListPublished(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	return groupByCategory(entries), nil
}

func (s *Service) ListPublic(ctx context.Context) ([]entities.ConfigEntry, error) {
	entries, err := s.repository.ListPublished(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list public config: %w", err)
	}
	return entries, nil
}

func groupByCategory(entries []entities.ConfigEntry) []entities.ConfigCategory {
	sorted := make([]entities.ConfigEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return sorted[i].Category < sorted[j].Category
		}
		return sorted[i].Key < sorted[j].Key
	})

	categories := make([]entities.ConfigCategory, 0, 4)
	for _, entry := range sorted {
		n := len(categories)
		if n == 0 || categories[n-1].Category != entry.Category {
			categories = append(categories, entities.ConfigCategory{Category: entry.Category})
			n++
		}
		categories[n-1].Entries = append(categories[n-1].Entries, entry)
	}
	return categories
}

func mapTxError(err error) error {
	if errors.Is(err, tx.ErrSerializationFailure) && !errors.Is(err, ErrConcurrentModification) {
		return fmt.Errorf("%w: %w", ErrConcurrentModification, err)
	}
	return err
}

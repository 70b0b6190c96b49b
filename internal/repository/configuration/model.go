package configuration

import "time"

type ConfigEntryDB struct {
	ID          int64
	Key         string
	Value       string
	DataType    string
	Category    string
	Description string
	IsPublic    bool
	Status      string
	PublishedAt *time.Time
	PublishedBy *int64
	UpdatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *ConfigEntryDB) scanTargets() []any {
	return []any{
		&e.ID,
		&e.Key,
		&e.Value,
		&e.DataType,
		&e.Category,
		&e.Description,
		&e.IsPublic,
		&e.Status,
		&e.PublishedAt,
		&e.PublishedBy,
		&e.UpdatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}

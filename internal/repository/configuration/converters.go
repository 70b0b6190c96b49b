package configuration

import (
	"builty-service/internal/entities"
)

func ToDomain(e *ConfigEntryDB) *entities.ConfigEntry {
	if e == nil {
		return nil
	}

	return &entities.ConfigEntry{
		ID:          e.ID,
		Key:         e.Key,
		Value:       e.Value,
		DataType:    entities.ConfigDataType(e.DataType),
		Category:    e.Category,
		Description: e.Description,
		IsPublic:    e.IsPublic,
		Status:      entities.LifecycleStatus(e.Status),
		PublishedAt: e.PublishedAt,
		PublishedBy: e.PublishedBy,
		UpdatedBy:   e.UpdatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToDomainList(entriesDB []ConfigEntryDB) []entities.ConfigEntry {
	if len(entriesDB) == 0 {
		return []entities.ConfigEntry{}
	}

	result := make([]entities.ConfigEntry, len(entriesDB))
	for i := range entriesDB {
		result[i] = *ToDomain(&entriesDB[i])
	}
	return result
}

package dto

import "time"

type ConfigEntry struct {
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	DataType    string     `json:"data_type"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	IsPublic    bool       `json:"is_public"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	PublishedBy *int64     `json:"published_by,omitempty"`
	UpdatedBy   *int64     `json:"updated_by,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ConfigDraft struct {
	Value       string `json:"value"`
	DataType    string `json:"data_type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type ConfigCategory struct {
	Category string        `json:"category"`
	Entries  []ConfigEntry `json:"entries"`
}

// PublicConfigEntry carries the decoded value of a public published key.
type PublicConfigEntry struct {
	Key      string `json:"key"`
	Value    any    `json:"value"`
	DataType string `json:"data_type"`
}

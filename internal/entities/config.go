package entities

import "time"

type ConfigDataType string

const (
	ConfigNumber  ConfigDataType = "number"
	ConfigBoolean ConfigDataType = "boolean"
	ConfigString  ConfigDataType = "string"
	ConfigJSON    ConfigDataType = "json"
)

func (t ConfigDataType) String() string {
	return string(t)
}

func (t ConfigDataType) IsValid() bool {
	switch t {
	case ConfigNumber, ConfigBoolean, ConfigString, ConfigJSON:
		return true
	}
	return false
}

// Ключи конфигурации, которые читает калькулятор комиссии.
const (
	ConfigKeyPlatformFeePercent = "platform_fee_percent"
	ConfigKeyMinPlatformFee     = "min_platform_fee"
	ConfigKeyMaxPlatformFee     = "max_platform_fee"
)

type ConfigEntry struct {
	ID          int64
	Key         string
	Value       string
	DataType    ConfigDataType
	Category    string
	Description string
	IsPublic    bool
	Status      LifecycleStatus
	PublishedAt *time.Time
	PublishedBy *int64
	UpdatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ConfigMetadata carries the non-value attributes of a draft write.
type ConfigMetadata struct {
	DataType    ConfigDataType
	Category    string
	Description string
	IsPublic    bool
}

type ConfigDraft struct {
	Key       string
	Value     string
	Metadata  ConfigMetadata
	UpdatedBy int64
	UpdatedAt time.Time
}

type ConfigCategory struct {
	Category string
	Entries  []ConfigEntry
}

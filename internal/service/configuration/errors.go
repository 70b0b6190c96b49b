package configuration

import "errors"

var (
	ErrInvalidConfigKey      = errors.New("invalid config key")
	ErrInvalidConfigDataType = errors.New("invalid config data type")
	ErrInvalidConfigValue    = errors.New("invalid config value")

	ErrConfigNotFound         = errors.New("config not found")
	ErrConfigArchived         = errors.New("config is archived")
	ErrConcurrentModification = errors.New("concurrent modification")
)

package binder

import "github.com/dmitrymomot/record/pkg/config"

// DefaultMaxBodySize is the default limit for request bodies (1MB).
const DefaultMaxBodySize = 1 << 20

// DefaultMaxMemory is the multipart memory budget passed to ParseMultipartForm (10MB).
const DefaultMaxMemory = 10 << 20

// Config holds binder settings that can be supplied through the environment.
type Config struct {
	MaxBodySize int64 `env:"RECORD_BINDER_MAX_BODY" envDefault:"1048576"` // Maximum accepted request body in bytes.
	Strict      bool  `env:"RECORD_BINDER_STRICT" envDefault:"false"`     // Reject undeclared keys instead of ignoring them.
}

func DefaultConfig() Config {
	return Config{MaxBodySize: DefaultMaxBodySize}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package validator

import "github.com/dmitrymomot/record/pkg/config"

// Config holds engine settings that can be supplied through the environment.
type Config struct {
	Strict       bool `env:"RECORD_VALIDATOR_STRICT" envDefault:"true"`      // Reject values when a rule names an unknown directive.
	PatternCache int  `env:"RECORD_VALIDATOR_PATTERN_CACHE" envDefault:"64"` // Maximum number of compiled regex patterns kept in memory.
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Strict:       true,
		PatternCache: 64,
	}
}

// LoadConfig reads Config from the environment (and an optional .env file).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

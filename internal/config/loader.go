package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if ROSTRA_CONFIG is set
//  3. env (prefix ROSTRA_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ROSTRA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROSTRA_LOG_LEVEL, ROSTRA_BATCH_WORKERS, ...
	// Map env keys like ROSTRA_BATCH_WORKERS -> batch_workers (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ROSTRA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "rostra_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BatchWorkers <= 0 {
		return fmt.Errorf("%w: batch_workers must be positive", ErrInvalidConfig)
	}
	if c.FallbackMaxHours <= 0 {
		return fmt.Errorf("%w: fallback_max_hours must be positive", ErrInvalidConfig)
	}
	for _, r := range append(append([]Rule(nil), c.PhaseRules...), c.TaskRules...) {
		if r.Pattern == "" {
			return fmt.Errorf("%w: rule with empty pattern", ErrInvalidConfig)
		}
		if len(r.Categories) == 0 {
			return fmt.Errorf("%w: rule %q names no categories", ErrInvalidConfig, r.Pattern)
		}
	}
	return nil
}

// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers
//   file and environment on top.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Rule is one ordered pattern entry for a classification table. Order
// in the slice is the match order.
type Rule struct {
	// Pattern is a case-insensitive regular expression.
	Pattern string `koanf:"pattern"`

	// Categories the pattern implies when it matches.
	Categories []string `koanf:"categories"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the Prometheus listen address, e.g.
	// ":9090". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// SnapshotPath points at a YAML roster/allocation snapshot for the
	// CLI. Empty means simulate one.
	SnapshotPath string `koanf:"snapshot"`

	// BatchWorkers bounds concurrent scoring in batch recommendation.
	BatchWorkers int `koanf:"batch_workers"`

	// Scoring weight table.
	PhaseFitBonus     float64 `koanf:"phase_fit_bonus"`
	TaskFitBonus      float64 `koanf:"task_fit_bonus"`
	TaskLoadPenalty   float64 `koanf:"task_load_penalty"`
	OverworkedPenalty float64 `koanf:"overworked_penalty"`

	// Weekly hours assumed for members without a capacity profile.
	FallbackMaxHours     float64 `koanf:"fallback_max_hours"`
	FallbackDefaultHours float64 `koanf:"fallback_default_hours"`

	// Classification tables. Empty slices/maps keep the built-in
	// defaults; non-empty values replace them wholesale.
	PhaseRules   []Rule              `koanf:"phase_rules"`
	TaskRules    []Rule              `koanf:"task_rules"`
	RoleKeywords map[string][]string `koanf:"role_keywords"`
}

// New creates a Config with defaults. The weight values mirror the
// canonical scoring table; the classification tables default to the
// built-in ones.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		MetricsAddr:          "",
		BatchWorkers:         runtime.NumCPU(),
		PhaseFitBonus:        3.0,
		TaskFitBonus:         2.0,
		TaskLoadPenalty:      0.1,
		OverworkedPenalty:    2.0,
		FallbackMaxHours:     40,
		FallbackDefaultHours: 40,
	}
}

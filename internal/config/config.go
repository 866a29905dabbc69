// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All loading functions accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// EventsFile is the path of the event-definition document loaded at
	// startup. Its absence or malformance is fatal.
	EventsFile string `koanf:"events_file"`

	// DataDir is the directory holding the persisted match log and
	// statistics documents.
	DataDir string `koanf:"data_dir"`

	// CORSOrigins lists the origins allowed by the CORS middleware.
	CORSOrigins []string `koanf:"cors_origins"`

	// MaxBodyBytes caps the size of a match report request body.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":9080",
		EventsFile:   "events.yaml",
		DataDir:      "data",
		CORSOrigins:  []string{"*"},
		MaxBodyBytes: 1 << 20,
	}
}

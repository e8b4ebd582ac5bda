package config

import (
	"os"

	"github.com/joho/godotenv"

	"mathlab/internal/check"
)

// Config holds all configuration for the harness binaries.
type Config struct {
	// LogFile is the grader's log path when no positional override is given.
	LogFile string

	// Verbosity controls the student runner's console output.
	Verbosity check.Verbosity

	// Command flags
	Flags Flags
}

// Flags holds command-line flags.
type Flags struct {
	// Review opens the failure viewer after a student run with failures.
	Review bool
	// JSONFile, when set, is where the grader writes a JSON results artifact.
	JSONFile string
}

// New creates a Config with defaults.
func New() *Config {
	verbosity, _ := check.ParseVerbosity(DefaultVerbosity)
	return &Config{
		LogFile:   DefaultLogFile,
		Verbosity: verbosity,
	}
}

// Load creates a Config and applies .env and environment overrides.
// A missing .env file is fine; plain environment variables still apply.
func Load() *Config {
	_ = godotenv.Load()

	cfg := New()
	if v := os.Getenv(EnvVerbosity); v != "" {
		if verbosity, err := check.ParseVerbosity(v); err == nil {
			cfg.Verbosity = verbosity
		}
	}
	if f := os.Getenv(EnvLogFile); f != "" {
		cfg.LogFile = f
	}
	return cfg
}

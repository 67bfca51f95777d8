package models

// Config represents the application configuration
type Config struct {
	Logging  LoggingConfig
	Output   OutputConfig
	Fixtures FixturesConfig
}

// LoggingConfig holds zap logger settings
type LoggingConfig struct {
	Level       string
	Development bool
}

// OutputConfig controls how decoded payloads are written back out
type OutputConfig struct {
	Format string // "json" or "yaml"
	Indent bool
}

// FixturesConfig points the verifier at a fixture manifest. Empty means the built-in examples.
type FixturesConfig struct {
	ManifestFile string
}

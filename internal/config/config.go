package config

// Config holds runtime configuration for the generator.
type Config struct {
	GenerateInterval Duration
	Workers          int
	Provider         string
	Quality          QualityConfig
	Metrics          MetricsConfig
}

// QualityConfig controls where per-run quality reports land.
type QualityConfig struct {
	Dir           string
	RetentionDays int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		GenerateInterval: durationEnvOrDefault(envGenerateInterval, defaultGenerateInterval),
		Workers:          intEnvOrDefault(envWorkers, defaultWorkers),
		Provider:         envOrDefault(envProvider, defaultProvider),
		Quality: QualityConfig{
			Dir:           envOrDefault(envQualityDir, defaultQualityDir),
			RetentionDays: intEnvOrDefault(envQualityRetention, defaultQualityRetention),
		},
		Metrics: loadMetrics(),
	}
}

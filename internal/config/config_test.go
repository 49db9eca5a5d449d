package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.GenerateInterval != 15*time.Minute {
		t.Fatalf("unexpected default interval %v", cfg.GenerateInterval)
	}
	if cfg.Workers != 4 {
		t.Fatalf("unexpected default workers %d", cfg.Workers)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("unexpected default provider %q", cfg.Provider)
	}
	if cfg.Quality.Dir != "data/quality" || cfg.Quality.RetentionDays != 14 {
		t.Fatalf("unexpected quality defaults %+v", cfg.Quality)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GENERATE_INTERVAL", "90s")
	t.Setenv("GENERATE_WORKERS", "8")
	t.Setenv("LINEUP_PROVIDER", "upstream")
	t.Setenv("QUALITY_REPORT_DIR", "/tmp/q")
	t.Setenv("QUALITY_RETENTION_DAYS", "3")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	if cfg.GenerateInterval != 90*time.Second {
		t.Fatalf("expected interval override, got %v", cfg.GenerateInterval)
	}
	if cfg.Workers != 8 {
		t.Fatalf("expected workers override, got %d", cfg.Workers)
	}
	if cfg.Provider != "upstream" {
		t.Fatalf("expected provider override, got %q", cfg.Provider)
	}
	if cfg.Quality.Dir != "/tmp/q" || cfg.Quality.RetentionDays != 3 {
		t.Fatalf("expected quality override, got %+v", cfg.Quality)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("GENERATE_INTERVAL", "soon")
	t.Setenv("GENERATE_WORKERS", "-2")
	t.Setenv("QUALITY_RETENTION_DAYS", "zero")

	cfg := Load()

	if cfg.GenerateInterval != 15*time.Minute {
		t.Fatalf("expected invalid interval to fall back, got %v", cfg.GenerateInterval)
	}
	if cfg.Workers != 4 {
		t.Fatalf("expected invalid workers to fall back, got %d", cfg.Workers)
	}
	if cfg.Quality.RetentionDays != 14 {
		t.Fatalf("expected invalid retention to fall back, got %d", cfg.Quality.RetentionDays)
	}
}

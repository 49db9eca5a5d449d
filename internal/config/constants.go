package config

import "time"

const (
	envGenerateInterval = "GENERATE_INTERVAL"
	envWorkers          = "GENERATE_WORKERS"
	envProvider         = "LINEUP_PROVIDER"
	envQualityDir       = "QUALITY_REPORT_DIR"
	envQualityRetention = "QUALITY_RETENTION_DAYS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	// Guide text only needs to refresh a few times an hour; a full pass is
	// cheap but the upstream lineup source may not be.
	defaultGenerateInterval = 15 * Duration(time.Minute)
	defaultWorkers          = 4
	defaultProvider         = "fixture"
	defaultQualityDir       = "data/quality"
	defaultQualityRetention = 14
	defaultMetricsPort      = "9090"
)

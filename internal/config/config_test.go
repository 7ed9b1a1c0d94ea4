package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, 120*time.Second, cfg.Order.StageDuration)
	assert.False(t, cfg.Otel.Enabled)
	assert.Equal(t, "localhost:4318", cfg.Otel.Endpoint)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ORDER_STAGE_DURATION_SECONDS", "30")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.Order.StageDuration)
	assert.True(t, cfg.Otel.Enabled)
	assert.Equal(t, "collector:4318", cfg.Otel.Endpoint)
}

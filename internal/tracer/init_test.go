package tracer

import (
	"context"
	"testing"

	"voicemart-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown := InitTracer(config.OtelConfig{Enabled: false, Endpoint: "localhost:4318"})
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

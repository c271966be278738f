package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	dev, err := New(true)
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	prod, err := New(false)
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.InfoLevel))
	assert.True(t, prod.Core().Enabled(zap.WarnLevel))
}

func TestIsDevelopment(t *testing.T) {
	t.Setenv(EnvVar, "DEV")
	assert.True(t, IsDevelopment())
	t.Setenv(EnvVar, "prod")
	assert.False(t, IsDevelopment())
}

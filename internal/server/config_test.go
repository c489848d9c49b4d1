package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Debug)
	assert.Equal(t, canny.DefaultOptions(), cfg.Defaults)
	assert.NotEmpty(t, cfg.Version)
}

func TestConfigFromLookup(t *testing.T) {
	cfg := configFromLookup(lookupFrom(map[string]string{
		EnvLogLevel:   "debug",
		EnvKernelSize: "7",
		EnvSigma:      "2.5",
		EnvLow:        "10",
		EnvHigh:       "200",
		EnvWorkers:    "4",
	}))

	assert.True(t, cfg.Debug)
	assert.Equal(t, canny.Options{KernelSize: 7, Sigma: 2.5, Low: 10, High: 200, Workers: 4}, cfg.Defaults)
}

func TestConfigFromLookup_Empty(t *testing.T) {
	cfg := configFromLookup(lookupFrom(nil))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromLookup_InvalidValuesKeepDefaults(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"even kernel", map[string]string{EnvKernelSize: "4"}},
		{"kernel not a number", map[string]string{EnvKernelSize: "five"}},
		{"zero sigma", map[string]string{EnvSigma: "0"}},
		{"negative sigma", map[string]string{EnvSigma: "-1"}},
		{"low too large", map[string]string{EnvLow: "300"}},
		{"high negative", map[string]string{EnvHigh: "-5"}},
		{"low above high", map[string]string{EnvLow: "150", EnvHigh: "120"}},
		{"zero workers", map[string]string{EnvWorkers: "0"}},
		{"log level not debug", map[string]string{EnvLogLevel: "info"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := configFromLookup(lookupFrom(tt.env))
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

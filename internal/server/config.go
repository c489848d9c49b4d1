package server

import (
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel   = "CANNY_MCP_LOG_LEVEL"
	EnvKernelSize = "CANNY_MCP_KERNEL_SIZE"
	EnvSigma      = "CANNY_MCP_SIGMA"
	EnvLow        = "CANNY_MCP_LOW"
	EnvHigh       = "CANNY_MCP_HIGH"
	EnvWorkers    = "CANNY_MCP_WORKERS"
)

// Config holds process-level server settings.
type Config struct {
	// Version is reported in the initialize handshake.
	Version string

	// Debug enables per-call timing logs.
	Debug bool

	// Defaults are the pipeline options used for any parameter a tool call
	// leaves unset.
	Defaults canny.Options
}

// DefaultConfig returns a non-debug config with canny.DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Version:  "0.1.0",
		Defaults: canny.DefaultOptions(),
	}
}

// ConfigFromEnv builds a Config from the CANNY_MCP_* environment variables.
// Unparseable or out-of-range values are logged and the default kept.
func ConfigFromEnv() Config {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvLogLevel); ok && v == "debug" {
		cfg.Debug = true
	}

	d := &cfg.Defaults
	if v, ok := lookup(EnvKernelSize); ok {
		if n, err := strconv.Atoi(v); err != nil || canny.ValidateKernelParams(n, d.Sigma) != nil {
			log.Printf("Ignoring %s=%q: want an odd integer >= 3", EnvKernelSize, v)
		} else {
			d.KernelSize = n
		}
	}
	if v, ok := lookup(EnvSigma); ok {
		if f, err := strconv.ParseFloat(v, 64); err != nil || canny.ValidateKernelParams(d.KernelSize, f) != nil {
			log.Printf("Ignoring %s=%q: want a positive number", EnvSigma, v)
		} else {
			d.Sigma = f
		}
	}
	if v, ok := lookup(EnvLow); ok {
		if n, err := strconv.ParseUint(v, 10, 8); err != nil {
			log.Printf("Ignoring %s=%q: want 0-255", EnvLow, v)
		} else {
			d.Low = uint8(n)
		}
	}
	if v, ok := lookup(EnvHigh); ok {
		if n, err := strconv.ParseUint(v, 10, 8); err != nil {
			log.Printf("Ignoring %s=%q: want 0-255", EnvHigh, v)
		} else {
			d.High = uint8(n)
		}
	}
	if err := canny.ValidateThresholds(d.Low, d.High); err != nil {
		log.Printf("Ignoring thresholds %d/%d: %v", d.Low, d.High, err)
		d.Low, d.High = canny.DefaultLow, canny.DefaultHigh
	}
	if v, ok := lookup(EnvWorkers); ok {
		if n, err := strconv.Atoi(v); err != nil || n < 1 {
			log.Printf("Ignoring %s=%q: want a positive integer", EnvWorkers, v)
		} else {
			d.Workers = n
		}
	}

	return cfg
}

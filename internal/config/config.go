// Package config provides configuration for the chess-rules tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Worker goroutines for batch queries (0 = one per CPU)
	Workers int

	Output *OutputConfig
	Server *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", c.Workers)
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	return c.Server.Validate()
}

// NumWorkers resolves the configured worker count.
func (c *Config) NumWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Logf writes a log line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

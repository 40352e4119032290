//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global configuration for truth table
// generators, minimizers, and tools.
package env

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
)

// DefaultMinimizer is the default two-level logic minimizer.
const DefaultMinimizer = "espresso"

// Config defines the global configuration. Config must not be
// modified after being passed to any module. It is safe for concurrent
// use by multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of entropy for random tables.
	Rand io.Reader

	// Minimizer is the minimizer executable. It is started with
	// MinimizerArgs followed by the input PLA file.
	Minimizer     string
	MinimizerArgs []string

	Verbose bool
	// Log receives the verbose diagnostics.
	Log io.Writer
}

// GetRandom returns the source of entropy for random tables.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetMinimizer returns the minimizer executable.
func (config *Config) GetMinimizer() string {
	if len(config.Minimizer) > 0 {
		return config.Minimizer
	}
	return DefaultMinimizer
}

// GetLog returns the diagnostics output.
func (config *Config) GetLog() io.Writer {
	if config.Log != nil {
		return config.Log
	}
	return os.Stderr
}

// Debugf prints a diagnostic message if Verbose is enabled.
func (config *Config) Debugf(format string, a ...interface{}) {
	if !config.Verbose {
		return
	}
	fmt.Fprintf(config.GetLog(), format, a...)
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package espresso minimizes truth tables with an external two-level
// logic minimizer such as espresso.
package espresso

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/markkurossi/truthtables/env"
	"github.com/markkurossi/truthtables/pla"
	"github.com/markkurossi/truthtables/table"
)

// ErrMinimizationFailed is returned when the minimizer exits with a
// non-zero status.
var ErrMinimizationFailed = errors.New("espresso: minimization failed")

// Error describes a failed minimizer run. It matches
// ErrMinimizationFailed with errors.Is.
type Error struct {
	ExitCode int
	// Output holds the captured standard output and standard error
	// of the minimizer.
	Output string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: exit status %d. Minimizer output:\n\n%s",
		ErrMinimizationFailed, e.ExitCode, e.Output)
}

// Unwrap returns ErrMinimizationFailed and the process error.
func (e *Error) Unwrap() []error {
	return []error{ErrMinimizationFailed, e.Err}
}

// Minimizer runs the external minimizer.
type Minimizer struct {
	config *env.Config
}

// New creates a new minimizer with the configuration.
func New(config *env.Config) *Minimizer {
	return &Minimizer{
		config: config,
	}
}

// Minimize writes the function to a temporary PLA file, runs the
// minimizer on it, and parses the minimized cover from the minimizer's
// standard output. The result has the name of f, and also its labels
// if the minimizer output does not define them.
func (m *Minimizer) Minimize(ctx context.Context, f table.Function) (
	*table.Cover, error) {

	dir, err := os.MkdirTemp("", "truthtables_minimize")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "in.pla")
	if err := pla.MarshalFile(input, f); err != nil {
		return nil, err
	}

	tool := m.config.GetMinimizer()
	args := append(slices.Clone(m.config.MinimizerArgs), input)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	m.config.Debugf("espresso: running %s\n", cmd)
	err = cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("espresso: %w", err)
		}
		return nil, &Error{
			ExitCode: exitErr.ExitCode(),
			Output:   stdout.String() + stderr.String(),
			Err:      err,
		}
	}

	c, err := pla.Parse(&stdout, tool, f.Name())
	if err != nil {
		return nil, err
	}
	m.config.Debugf("espresso: %d products\n", c.NumProducts())

	return relabel(c, f)
}

// relabel sets the labels of f to c if c has the same arity and
// default labels.
func relabel(c *table.Cover, f table.Function) (*table.Cover, error) {
	if c.NumInputs() != f.NumInputs() || c.NumOutputs() != f.NumOutputs() {
		return c, nil
	}
	if !slices.Equal(c.Inputs(),
		table.DefaultLabels("i", c.NumInputs())) ||
		!slices.Equal(c.Outputs(),
			table.DefaultLabels("o", c.NumOutputs())) {
		return c, nil
	}
	return table.NewCover(c.NumInputs(), c.NumOutputs(), c.Products(),
		&table.Options{
			Name:    c.Name(),
			Inputs:  f.Inputs(),
			Outputs: f.Outputs(),
			Type:    c.Type(),
		})
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gen

import (
	"errors"
	"strings"
	"testing"

	"github.com/markkurossi/truthtables/env"
	"github.com/markkurossi/truthtables/table"
)

func TestRandomShape(t *testing.T) {
	numInputs := 4
	numOutputs := 6

	d, err := Uniform(&env.Config{}, numInputs, numOutputs)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1<<numInputs {
		t.Errorf("expected %d rows, got %d", 1<<numInputs, d.Len())
	}
	for i, row := range d.Rows() {
		if len(row) != numOutputs {
			t.Errorf("row %d has %d outputs", i, len(row))
		}
	}
}

func TestRandomBias(t *testing.T) {
	cfg := &env.Config{
		Rand: env.NewPRG(1),
	}
	d, err := Random(cfg, 3, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range d.Rows() {
		if row != "0000" {
			t.Errorf("bias 0: row %d=%s", i, row)
		}
	}
	d, err = Random(cfg, 3, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range d.Rows() {
		if row != "1111" {
			t.Errorf("bias 1: row %d=%s", i, row)
		}
	}

	d, err = Random(cfg, 10, 4, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	var ones int
	for _, row := range d.Rows() {
		ones += strings.Count(row, "1")
	}
	total := d.Len() * d.NumOutputs()
	ratio := float64(ones) / float64(total)
	if ratio < 0.2 || ratio > 0.3 {
		t.Errorf("bias 0.25: ratio of ones %v", ratio)
	}
}

func TestRandomSeeded(t *testing.T) {
	a, err := Uniform(&env.Config{Rand: env.NewPRG(7)}, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Uniform(&env.Config{Rand: env.NewPRG(7)}, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("same seed produced different tables")
	}
}

func TestRandomErrors(t *testing.T) {
	cfg := &env.Config{}
	if _, err := Random(cfg, -1, 1, 0.5); !errors.Is(err, table.ErrInvalidArity) {
		t.Errorf("negative inputs: %v", err)
	}
	if _, err := Random(cfg, 2, 0, 0.5); !errors.Is(err, table.ErrInvalidArity) {
		t.Errorf("zero outputs: %v", err)
	}
	for _, bias := range []float64{-0.1, 1.1} {
		if _, err := Random(cfg, 2, 1, bias); err == nil {
			t.Errorf("bias %v accepted", bias)
		}
	}
}

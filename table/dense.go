//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package table

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Dense is a fully enumerated truth table. Row i holds the output bits
// for the input combination whose binary value is i, the first input
// being the most significant bit. Dense tables are immutable.
type Dense struct {
	name    string
	inputs  []string
	outputs []string
	rows    []string
}

// NewDense creates a dense truth table from the output rows. The
// number of rows must be a power of two and all rows must have the
// same non-zero width. Labels not set in opts default to i0, i1, ...
// and o0, o1, ...
func NewDense(rows []string, opts *Options) (*Dense, error) {
	if len(rows) == 0 || bits.OnesCount(uint(len(rows))) != 1 {
		return nil, fmt.Errorf("%w: number of rows %d is not a power of 2",
			ErrInvalidArity, len(rows))
	}
	numInputs := bits.TrailingZeros(uint(len(rows)))
	numOutputs := len(rows[0])
	if numOutputs == 0 {
		return nil, fmt.Errorf("%w: rows have no outputs", ErrInvalidArity)
	}
	for idx, row := range rows {
		if len(row) != numOutputs {
			return nil, fmt.Errorf("%w: row %d has %d outputs, expected %d",
				ErrInvalidArity, idx, len(row), numOutputs)
		}
		for i := 0; i < len(row); i++ {
			if row[i] != '0' && row[i] != '1' {
				return nil, fmt.Errorf("%w: '%c' in row %d",
					ErrInvalidSymbol, row[i], idx)
			}
		}
	}
	inputs, err := makeLabels("input", "i", opts.inputs(), numInputs)
	if err != nil {
		return nil, err
	}
	outputs, err := makeLabels("output", "o", opts.outputs(), numOutputs)
	if err != nil {
		return nil, err
	}
	return &Dense{
		name:    opts.name(),
		inputs:  inputs,
		outputs: outputs,
		rows:    slices.Clone(rows),
	}, nil
}

func (d *Dense) function() {}

func (d *Dense) String() string {
	return fmt.Sprintf("%s: #inputs=%d, #outputs=%d, #rows=%d",
		d.name, len(d.inputs), len(d.outputs), len(d.rows))
}

// Name returns the table name.
func (d *Dense) Name() string {
	return d.name
}

// Inputs returns the input labels.
func (d *Dense) Inputs() []string {
	return slices.Clone(d.inputs)
}

// Outputs returns the output labels.
func (d *Dense) Outputs() []string {
	return slices.Clone(d.outputs)
}

// NumInputs returns the number of inputs.
func (d *Dense) NumInputs() int {
	return len(d.inputs)
}

// NumOutputs returns the number of outputs.
func (d *Dense) NumOutputs() int {
	return len(d.outputs)
}

// Len returns the number of rows.
func (d *Dense) Len() int {
	return len(d.rows)
}

// Row returns the output bits of row i.
func (d *Dense) Row(i int) string {
	return d.rows[i]
}

// Rows returns all output rows.
func (d *Dense) Rows() []string {
	return slices.Clone(d.rows)
}

// Bit tests if output o of row i is 1.
func (d *Dense) Bit(i, o int) bool {
	return d.rows[i][o] == '1'
}

// InputString returns the input combination of row i as a zero-padded
// binary string.
func (d *Dense) InputString(i int) string {
	return bitString(uint64(i), len(d.inputs))
}

// InputCube returns the input combination of row i as a cube without
// don't-cares.
func (d *Dense) InputCube(i int) InputCube {
	n := len(d.inputs)
	cube := make(InputCube, n)
	for j := 0; j < n; j++ {
		if (uint64(i)>>uint(n-1-j))&1 == 1 {
			cube[j] = I1
		} else {
			cube[j] = I0
		}
	}
	return cube
}

// Onset returns the indices of the rows where the output is 1.
func (d *Dense) Onset(output string) ([]int, error) {
	o, err := labelIndex(d.outputs, output)
	if err != nil {
		return nil, err
	}
	var result []int
	for i, row := range d.rows {
		if row[o] == '1' {
			result = append(result, i)
		}
	}
	return result, nil
}

// InputProduct returns the canonical literal conjunction of row i,
// for example "~i0 & i1".
func (d *Dense) InputProduct(i int) string {
	return literals(d.inputs, d.InputCube(i))
}

// Entropy returns the entropy of the output rows.
func (d *Dense) Entropy() float64 {
	return Entropy(d.rows)
}

// OutputEntropies returns the entropy of each output column.
func (d *Dense) OutputEntropies() []float64 {
	result := make([]float64, len(d.outputs))
	column := make([]byte, len(d.rows))
	for o := range d.outputs {
		for i, row := range d.rows {
			column[i] = row[o]
		}
		result[o] = Entropy(column)
	}
	return result
}

// Equal tests if the tables have the same name, labels, and rows.
func (d *Dense) Equal(o *Dense) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.name == o.name &&
		slices.Equal(d.inputs, o.inputs) &&
		slices.Equal(d.outputs, o.outputs) &&
		slices.Equal(d.rows, o.rows)
}

// Table returns the rows as text, one "inputs outputs" line per row.
func (d *Dense) Table() string {
	var sb strings.Builder
	for i, row := range d.rows {
		sb.WriteString(d.InputString(i))
		sb.WriteByte(' ')
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

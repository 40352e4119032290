//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package table

import (
	"fmt"
	"slices"
	"strings"
)

// MaxExpandInputs is the maximum number of inputs of a cover that can
// be expanded into a dense table.
const MaxExpandInputs = 24

// FromDense creates a cover with one product per row of the table.
// The input cube of product i is the binary value of i and the output
// cube is the row verbatim.
func FromDense(d *Dense) *Cover {
	c := &Cover{
		name:     d.name,
		typ:      DefaultType,
		inputs:   slices.Clone(d.inputs),
		outputs:  slices.Clone(d.outputs),
		products: make([]Product, len(d.rows)),
	}
	for i, row := range d.rows {
		out := make(OutputCube, len(row))
		for j := 0; j < len(row); j++ {
			if row[j] == '1' {
				out[j] = O1
			} else {
				out[j] = O0
			}
		}
		c.products[i] = Product{
			In:  d.InputCube(i),
			Out: out,
		}
	}
	return c
}

// Expand creates the dense truth table of the cover. Each row gets the
// output cube of the first product, in stored order, whose input cube
// matches the row's input combination. Output don't-cares are written
// as 0 and rows matched by no product are all 0.
func Expand(c *Cover) (*Dense, error) {
	n := len(c.inputs)
	if n > MaxExpandInputs {
		return nil, fmt.Errorf("%w: cannot expand %d inputs (max %d)",
			ErrInvalidArity, n, MaxExpandInputs)
	}
	size := uint64(1) << uint(n)
	rows := make([]string, size)
	assigned := make([]bool, size)
	remaining := size

	for _, p := range c.products {
		if remaining == 0 {
			break
		}
		out := p.Out.Bits()
		base, dcs := p.In.pattern()
		k := len(dcs)

		// Substitutions in increasing binary value of the
		// don't-care bits, the first don't-care position being the
		// most significant.
		for sub := uint64(0); sub < uint64(1)<<uint(k); sub++ {
			idx := base
			for j, shift := range dcs {
				if (sub>>uint(k-1-j))&1 == 1 {
					idx |= 1 << shift
				}
			}
			if !assigned[idx] {
				rows[idx] = out
				assigned[idx] = true
				remaining--
			}
		}
	}
	if remaining > 0 {
		zero := strings.Repeat("0", len(c.outputs))
		for idx := range rows {
			if !assigned[idx] {
				rows[idx] = zero
			}
		}
	}

	return &Dense{
		name:    c.name,
		inputs:  slices.Clone(c.inputs),
		outputs: slices.Clone(c.outputs),
		rows:    rows,
	}, nil
}

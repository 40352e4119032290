//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package verify checks truth tables and covers for equivalence with
// a SAT solver and counts their onsets with binary decision diagrams.
package verify

import (
	"fmt"

	"github.com/markkurossi/truthtables/table"
)

// Semantics specifies how the products of a cover define the output
// values.
type Semantics int

const (
	// Priority takes the outputs from the first matching product.
	// Output don't-cares are 0 and unmatched inputs give 0. This is
	// the semantics of table.Expand and of casez emission.
	Priority Semantics = iota
	// SumOfProducts sets an output if any matching product has 1 at
	// the output. This is the semantics of SOP emission and of
	// two-level minimizers.
	SumOfProducts
)

func (s Semantics) String() string {
	switch s {
	case Priority:
		return "priority"
	case SumOfProducts:
		return "sop"
	default:
		return fmt.Sprintf("{Semantics %d}", s)
	}
}

// builder constructs Boolean functions over the inputs in some
// representation N.
type builder[N any] interface {
	True() N
	False() N
	// Lit returns input i or its negation.
	Lit(i int, positive bool) N
	And(ns ...N) N
	Or(ns ...N) N
	Ite(i, t, e N) N
}

// build returns the function of each output of f.
func build[N any](b builder[N], f table.Function, sem Semantics) (
	[]N, error) {

	switch f := f.(type) {
	case *table.Dense:
		return buildDense(b, f), nil
	case *table.Cover:
		switch sem {
		case Priority:
			return buildPriority(b, f), nil
		case SumOfProducts:
			return buildSOP(b, f), nil
		default:
			return nil, fmt.Errorf("verify: unsupported semantics %s", sem)
		}
	default:
		return nil, fmt.Errorf("verify: unsupported function %T", f)
	}
}

func cube[N any](b builder[N], in table.InputCube) N {
	var lits []N
	for i, s := range in {
		switch s {
		case table.I0:
			lits = append(lits, b.Lit(i, false))
		case table.I1:
			lits = append(lits, b.Lit(i, true))
		}
	}
	if len(lits) == 0 {
		return b.True()
	}
	return b.And(lits...)
}

func buildDense[N any](b builder[N], d *table.Dense) []N {
	result := make([]N, d.NumOutputs())
	for o := range result {
		var terms []N
		for i := 0; i < d.Len(); i++ {
			if d.Bit(i, o) {
				terms = append(terms, cube(b, d.InputCube(i)))
			}
		}
		if len(terms) == 0 {
			result[o] = b.False()
		} else {
			result[o] = b.Or(terms...)
		}
	}
	return result
}

func buildSOP[N any](b builder[N], c *table.Cover) []N {
	result := make([]N, c.NumOutputs())
	terms := make([][]N, c.NumOutputs())
	for _, p := range c.Products() {
		var m N
		var built bool
		for o, s := range p.Out {
			if s != table.O1 {
				continue
			}
			if !built {
				m = cube(b, p.In)
				built = true
			}
			terms[o] = append(terms[o], m)
		}
	}
	for o := range result {
		if len(terms[o]) == 0 {
			result[o] = b.False()
		} else {
			result[o] = b.Or(terms[o]...)
		}
	}
	return result
}

func buildPriority[N any](b builder[N], c *table.Cover) []N {
	result := make([]N, c.NumOutputs())
	for o := range result {
		result[o] = b.False()
	}
	products := c.Products()
	for idx := len(products) - 1; idx >= 0; idx-- {
		p := products[idx]
		m := cube(b, p.In)
		for o, s := range p.Out {
			v := b.False()
			if s == table.O1 {
				v = b.True()
			}
			result[o] = b.Ite(m, v, result[o])
		}
	}
	return result
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package verify

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/markkurossi/truthtables/table"
)

// Result holds the result of an equivalence check.
type Result struct {
	Equal bool
	// Output is the first output where the functions differ.
	Output string
	// Input is an input combination, as a bit string, where the
	// functions differ at Output.
	Input string
}

func (r *Result) String() string {
	if r.Equal {
		return "equivalent"
	}
	return fmt.Sprintf("differ at %s for input %s", r.Output, r.Input)
}

type aig struct {
	c   *logic.C
	ins []z.Lit
}

func (a *aig) True() z.Lit {
	return a.c.T
}

func (a *aig) False() z.Lit {
	return a.c.F
}

func (a *aig) Lit(i int, positive bool) z.Lit {
	if positive {
		return a.ins[i]
	}
	return a.ins[i].Not()
}

func (a *aig) And(ns ...z.Lit) z.Lit {
	return a.c.Ands(ns...)
}

func (a *aig) Or(ns ...z.Lit) z.Lit {
	return a.c.Ors(ns...)
}

func (a *aig) Ite(i, t, e z.Lit) z.Lit {
	return a.c.Choice(i, t, e)
}

// Equivalent tests if the functions a and b compute the same outputs
// for all inputs. Covers are interpreted with the semantics sem. The
// functions must have the same arity; labels are not compared.
func Equivalent(a, b table.Function, sem Semantics) (*Result, error) {
	if a.NumInputs() != b.NumInputs() || a.NumOutputs() != b.NumOutputs() {
		return nil, fmt.Errorf("%w: %d/%d vs. %d/%d", table.ErrInvalidArity,
			a.NumInputs(), a.NumOutputs(), b.NumInputs(), b.NumOutputs())
	}
	circ := &aig{
		c:   logic.NewC(),
		ins: make([]z.Lit, a.NumInputs()),
	}
	for i := range circ.ins {
		circ.ins[i] = circ.c.Lit()
	}
	fa, err := build[z.Lit](circ, a, sem)
	if err != nil {
		return nil, err
	}
	fb, err := build[z.Lit](circ, b, sem)
	if err != nil {
		return nil, err
	}

	outputs := a.Outputs()
	for o := range fa {
		miter := circ.c.Xor(fa[o], fb[o])

		g := gini.New()
		circ.c.ToCnf(g)
		g.Add(circ.c.T)
		g.Add(0)
		g.Assume(miter)
		if g.Solve() != 1 {
			continue
		}
		input := make([]byte, len(circ.ins))
		for i, in := range circ.ins {
			if g.Value(in) {
				input[i] = '1'
			} else {
				input[i] = '0'
			}
		}
		return &Result{
			Output: outputs[o],
			Input:  string(input),
		}, nil
	}
	return &Result{
		Equal: true,
	}, nil
}

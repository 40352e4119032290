//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package verify

import (
	"math/big"

	"github.com/dalzilio/rudd"
	"github.com/markkurossi/truthtables/table"
)

type bdd struct {
	b *rudd.BDD
}

func (b *bdd) True() rudd.Node {
	return b.b.True()
}

func (b *bdd) False() rudd.Node {
	return b.b.False()
}

func (b *bdd) Lit(i int, positive bool) rudd.Node {
	if positive {
		return b.b.Ithvar(i)
	}
	return b.b.NIthvar(i)
}

func (b *bdd) And(ns ...rudd.Node) rudd.Node {
	return b.b.And(ns...)
}

func (b *bdd) Or(ns ...rudd.Node) rudd.Node {
	return b.b.Or(ns...)
}

func (b *bdd) Ite(i, t, e rudd.Node) rudd.Node {
	return b.b.Ite(i, t, e)
}

// OnsetSizes returns the number of input combinations for which each
// output of f is 1. Covers are interpreted with the semantics sem and
// they are not expanded into dense tables.
func OnsetSizes(f table.Function, sem Semantics) ([]*big.Int, error) {
	varnum := f.NumInputs()
	if varnum == 0 {
		varnum = 1
	}
	b, err := rudd.New(varnum)
	if err != nil {
		return nil, err
	}
	nodes, err := build[rudd.Node](&bdd{b: b}, f, sem)
	if err != nil {
		return nil, err
	}
	result := make([]*big.Int, len(nodes))
	for o, n := range nodes {
		count := new(big.Int).Set(b.Satcount(n))
		if f.NumInputs() == 0 {
			count.Rsh(count, 1)
		}
		result[o] = count
	}
	return result, nil
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"github.com/markkurossi/truthtables/table"
	"github.com/markkurossi/truthtables/verify"
)

// printInfo prints the function summary and its per-output
// statistics. The onsets of covers are counted with the semantics
// sem.
func printInfo(out io.Writer, f table.Function, sem verify.Semantics) error {
	var kind string
	var products int
	var entropy float64
	var entropies []float64

	switch f := f.(type) {
	case *table.Dense:
		kind = "dense"
		products = f.Len()
		entropy = f.Entropy()
		entropies = f.OutputEntropies()
	case *table.Cover:
		kind = "cover"
		products = f.NumProducts()
		entropy = f.Entropy()
		entropies = f.OutputEntropies()
	default:
		return fmt.Errorf("unsupported function %T", f)
	}
	sizes, err := verify.OnsetSizes(f, sem)
	if err != nil {
		return err
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Property").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column("Name")
	row.Column(f.Name()).SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("Kind")
	row.Column(kind)

	row = tab.Row()
	row.Column("Inputs")
	row.Column(fmt.Sprintf("%d", f.NumInputs()))

	row = tab.Row()
	row.Column("Outputs")
	row.Column(fmt.Sprintf("%d", f.NumOutputs()))

	row = tab.Row()
	row.Column("Rows")
	row.Column("2" + superscript.Itoa(f.NumInputs()))

	row = tab.Row()
	row.Column("Products")
	row.Column(fmt.Sprintf("%d", products))

	row = tab.Row()
	row.Column("Entropy")
	row.Column(fmt.Sprintf("%.4f", entropy))

	tab.Print(out)
	fmt.Fprintln(out)

	tab = tabulate.New(tabulate.UnicodeLight)
	tab.Header("Output").SetAlign(tabulate.ML)
	tab.Header("Onset").SetAlign(tabulate.MR)
	tab.Header("Entropy").SetAlign(tabulate.MR)

	for o, label := range f.Outputs() {
		row := tab.Row()
		row.Column(label)
		row.Column(sizes[o].String())
		row.Column(fmt.Sprintf("%.4f", entropies[o]))
	}
	row = tab.Row()
	row.Column("Semantics").SetFormat(tabulate.FmtItalic)
	row.Column(sem.String()).SetFormat(tabulate.FmtItalic)
	row.Column("")

	tab.Print(out)
	return nil
}

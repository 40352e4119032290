//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package pla

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/markkurossi/truthtables/table"
)

var now = time.Now

// Marshal writes the function in the PLA format. Dense tables are
// written with one product per row.
func Marshal(out io.Writer, f table.Function) error {
	var c *table.Cover
	switch f := f.(type) {
	case *table.Cover:
		c = f
	case *table.Dense:
		c = table.FromDense(f)
	default:
		return fmt.Errorf("pla: unsupported function %T", f)
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Written by truthtables on %s\n",
		now().Format(time.RFC3339))
	fmt.Fprintf(w, ".i %d\n", c.NumInputs())
	fmt.Fprintf(w, ".o %d\n", c.NumOutputs())
	if c.NumInputs() > 0 {
		fmt.Fprintf(w, ".ilb %s\n", strings.Join(c.Inputs(), " "))
	}
	fmt.Fprintf(w, ".ob %s\n", strings.Join(c.Outputs(), " "))
	fmt.Fprintf(w, ".type %s\n", c.Type())
	fmt.Fprintf(w, ".p %d\n", c.NumProducts())
	for _, p := range c.Products() {
		fmt.Fprintf(w, "%s %s\n", p.In, p.Out)
	}
	fmt.Fprintf(w, ".end\n")

	return w.Flush()
}

// MarshalFile writes the function to the PLA file.
func MarshalFile(file string, f table.Function) error {
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := Marshal(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

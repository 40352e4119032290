//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package verilog writes truth tables and covers as Verilog-2001
// modules.
package verilog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/markkurossi/truthtables/table"
)

// Mode specifies how the function is written.
type Mode int

// Emit modes.
const (
	// Case writes one case branch per row of a dense table or a
	// priority casez branch per product of a cover.
	Case Mode = iota
	// SOP writes one sum-of-products continuous assignment per
	// output.
	SOP
)

var modes = map[Mode]string{
	Case: "case",
	SOP:  "sop",
}

func (m Mode) String() string {
	name, ok := modes[m]
	if ok {
		return name
	}
	return fmt.Sprintf("{Mode %d}", m)
}

// ParseMode parses the mode name.
func ParseMode(name string) (Mode, error) {
	for k, v := range modes {
		if v == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("verilog: unknown mode '%s'", name)
}

var now = time.Now

// ErrInvalidIdentifier is returned when the module name or a port
// label is not a Verilog simple identifier.
var ErrInvalidIdentifier = errors.New("verilog: invalid identifier")

var reIdent = regexp.MustCompilePOSIX(`^[A-Za-z_][A-Za-z0-9_$]*$`)

func checkIdentifiers(f table.Function) error {
	if !reIdent.MatchString(f.Name()) {
		return fmt.Errorf("%w: module name '%s'", ErrInvalidIdentifier,
			f.Name())
	}
	for _, label := range f.Inputs() {
		if !reIdent.MatchString(label) {
			return fmt.Errorf("%w: input '%s'", ErrInvalidIdentifier, label)
		}
	}
	for _, label := range f.Outputs() {
		if !reIdent.MatchString(label) {
			return fmt.Errorf("%w: output '%s'", ErrInvalidIdentifier, label)
		}
	}
	return nil
}

// Emit writes the function as a Verilog module named after the
// function.
func Emit(out io.Writer, f table.Function, mode Mode) error {
	switch f.(type) {
	case *table.Dense, *table.Cover:
	default:
		return fmt.Errorf("verilog: unsupported function %T", f)
	}
	if mode != Case && mode != SOP {
		return fmt.Errorf("verilog: unsupported mode %s", mode)
	}
	if err := checkIdentifiers(f); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	inputs := f.Inputs()
	outputs := f.Outputs()

	// A function without inputs is a constant and it is always
	// written as a continuous assignment.
	reg := mode == Case && len(inputs) > 0

	fmt.Fprintf(w, "// Written by truthtables on %s\n",
		now().Format(time.RFC3339))
	fmt.Fprintf(w, "module %s( %s );\n\n", f.Name(),
		strings.Join(append(inputs, outputs...), " , "))
	if len(inputs) > 0 {
		fmt.Fprintf(w, "input %s ;\n", strings.Join(inputs, " , "))
	}
	if reg {
		fmt.Fprintf(w, "output reg %s ;\n\n", strings.Join(outputs, " , "))
	} else {
		fmt.Fprintf(w, "output %s ;\n\n", strings.Join(outputs, " , "))
	}

	var err error
	switch {
	case len(inputs) == 0:
		constant(w, f, mode)
	case mode == SOP:
		err = sop(w, f)
	default:
		switch f := f.(type) {
		case *table.Dense:
			caseDense(w, f)
		case *table.Cover:
			caseCover(w, f)
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nendmodule\n")

	return w.Flush()
}

func concat(labels []string) string {
	return fmt.Sprintf("{ %s }", strings.Join(labels, " , "))
}

func caseDense(w io.Writer, d *table.Dense) {
	outputs := concat(d.Outputs())

	fmt.Fprintf(w, "always@(*) begin\n")
	fmt.Fprintf(w, "\tcase (%s)\n", concat(d.Inputs()))
	for i := 0; i < d.Len(); i++ {
		fmt.Fprintf(w, "\t\t%d'b%s : %s = %d'b%s;\n",
			d.NumInputs(), d.InputString(i),
			outputs, d.NumOutputs(), d.Row(i))
	}
	fmt.Fprintf(w, "\tendcase\nend\n")
}

// caseCover writes the products as casez branches. The first matching
// branch is taken, so the result equals the expanded table.
func caseCover(w io.Writer, c *table.Cover) {
	outputs := concat(c.Outputs())

	fmt.Fprintf(w, "always@(*) begin\n")
	fmt.Fprintf(w, "\tcasez (%s)\n", concat(c.Inputs()))
	for _, p := range c.Products() {
		pattern := strings.ReplaceAll(p.In.String(), "-", "?")
		fmt.Fprintf(w, "\t\t%d'b%s : %s = %d'b%s;\n",
			c.NumInputs(), pattern, outputs, c.NumOutputs(), p.Out.Bits())
	}
	fmt.Fprintf(w, "\t\tdefault : %s = %d'b%s;\n",
		outputs, c.NumOutputs(), strings.Repeat("0", c.NumOutputs()))
	fmt.Fprintf(w, "\tendcase\nend\n")
}

// constant writes a function without inputs. In SOP mode each output
// is the OR of all products, otherwise the first product defines the
// outputs.
func constant(w io.Writer, f table.Function, mode Mode) {
	value := strings.Repeat("0", f.NumOutputs())
	switch f := f.(type) {
	case *table.Dense:
		value = f.Row(0)
	case *table.Cover:
		if mode == SOP {
			bits := []byte(value)
			for _, p := range f.Products() {
				for o, s := range p.Out {
					if s == table.O1 {
						bits[o] = '1'
					}
				}
			}
			value = string(bits)
		} else if f.NumProducts() > 0 {
			value = f.Product(0).Out.Bits()
		}
	}
	fmt.Fprintf(w, "assign %s = %d'b%s ;\n",
		concat(f.Outputs()), f.NumOutputs(), value)
}

func sop(w io.Writer, f table.Function) error {
	for _, output := range f.Outputs() {
		onset, err := f.Onset(output)
		if err != nil {
			return err
		}
		if len(onset) == 0 {
			fmt.Fprintf(w, "assign %s = 1'b0 ;\n", output)
			continue
		}
		terms := make([]string, len(onset))
		for idx, i := range onset {
			product := f.InputProduct(i)
			if len(product) == 0 {
				product = "1'b1"
			}
			terms[idx] = "( " + product + " )"
		}
		fmt.Fprintf(w, "assign %s = %s ;\n", output,
			strings.Join(terms, " | "))
	}
	return nil
}

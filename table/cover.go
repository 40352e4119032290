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

// Product is one cube of a cover.
type Product struct {
	In  InputCube
	Out OutputCube
}

func (p Product) String() string {
	return p.In.String() + " " + p.Out.String()
}

func (p Product) clone() Product {
	return Product{
		In:  p.In.clone(),
		Out: p.Out.clone(),
	}
}

// Cover is a sparse ternary cover (PLA): an ordered list of products.
// Covers are immutable and own their products.
type Cover struct {
	name     string
	typ      string
	inputs   []string
	outputs  []string
	products []Product
}

// NewCover creates a cover with the argument arity and products. All
// product cubes must match the arity and hold only the defined
// symbols.
func NewCover(numInputs, numOutputs int, products []Product, opts *Options) (
	*Cover, error) {

	if numInputs < 0 || numOutputs <= 0 {
		return nil, fmt.Errorf("%w: #inputs=%d, #outputs=%d",
			ErrInvalidArity, numInputs, numOutputs)
	}
	for idx, p := range products {
		if len(p.In) != numInputs {
			return nil, fmt.Errorf("%w: product %d has %d inputs, expected %d",
				ErrInvalidArity, idx, len(p.In), numInputs)
		}
		if len(p.Out) != numOutputs {
			return nil,
				fmt.Errorf("%w: product %d has %d outputs, expected %d",
					ErrInvalidArity, idx, len(p.Out), numOutputs)
		}
		for i, sym := range p.In {
			if sym > IDC {
				return nil, fmt.Errorf("%w: product %d input %d: %v",
					ErrInvalidSymbol, idx, i, sym)
			}
		}
		for o, sym := range p.Out {
			if sym > ODC {
				return nil, fmt.Errorf("%w: product %d output %d: %v",
					ErrInvalidSymbol, idx, o, sym)
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
	c := &Cover{
		name:     opts.name(),
		typ:      opts.plaType(),
		inputs:   inputs,
		outputs:  outputs,
		products: make([]Product, len(products)),
	}
	for idx, p := range products {
		c.products[idx] = p.clone()
	}
	return c, nil
}

// ParseCover creates a cover from the text forms of the input and
// output cubes. The arity is taken from the labels in opts, or from
// the first product when the labels are not set.
func ParseCover(inputs, outputs []string, opts *Options) (*Cover, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("%w: %d input cubes, %d output cubes",
			ErrInvalidArity, len(inputs), len(outputs))
	}
	var numInputs, numOutputs int
	if l := opts.inputs(); l != nil {
		numInputs = len(l)
	} else if len(inputs) > 0 {
		numInputs = len(inputs[0])
	}
	if l := opts.outputs(); l != nil {
		numOutputs = len(l)
	} else if len(outputs) > 0 {
		numOutputs = len(outputs[0])
	}

	products := make([]Product, len(inputs))
	for idx := range inputs {
		in, err := ParseInputCube(inputs[idx])
		if err != nil {
			return nil, err
		}
		out, err := ParseOutputCube(outputs[idx])
		if err != nil {
			return nil, err
		}
		products[idx] = Product{
			In:  in,
			Out: out,
		}
	}
	return NewCover(numInputs, numOutputs, products, opts)
}

func (c *Cover) function() {}

// Name returns the cover name.
func (c *Cover) Name() string {
	return c.name
}

// Type returns the PLA type of the cover.
func (c *Cover) Type() string {
	return c.typ
}

// Inputs returns the input labels.
func (c *Cover) Inputs() []string {
	return slices.Clone(c.inputs)
}

// Outputs returns the output labels.
func (c *Cover) Outputs() []string {
	return slices.Clone(c.outputs)
}

// NumInputs returns the number of inputs.
func (c *Cover) NumInputs() int {
	return len(c.inputs)
}

// NumOutputs returns the number of outputs.
func (c *Cover) NumOutputs() int {
	return len(c.outputs)
}

// NumProducts returns the number of products.
func (c *Cover) NumProducts() int {
	return len(c.products)
}

// Product returns the product i.
func (c *Cover) Product(i int) Product {
	return c.products[i].clone()
}

// Products returns all products in their stored order.
func (c *Cover) Products() []Product {
	result := make([]Product, len(c.products))
	for idx, p := range c.products {
		result[idx] = p.clone()
	}
	return result
}

// Onset returns the indices of the products whose output cube has 1
// at the output. Don't-cares are not expanded.
func (c *Cover) Onset(output string) ([]int, error) {
	o, err := labelIndex(c.outputs, output)
	if err != nil {
		return nil, err
	}
	var result []int
	for idx, p := range c.products {
		if p.Out[o] == O1 {
			result = append(result, idx)
		}
	}
	return result, nil
}

// InputProduct returns the literal conjunction of the product i.
// Don't-care inputs contribute no literal.
func (c *Cover) InputProduct(i int) string {
	return literals(c.inputs, c.products[i].In)
}

// ToIndices returns the input combination and output value of each
// product as unsigned integers. It fails with ErrDontCareNotAllowed if
// any cube contains a don't-care.
func (c *Cover) ToIndices() (inputs, outputs []uint64, err error) {
	inputs = make([]uint64, len(c.products))
	outputs = make([]uint64, len(c.products))
	for idx, p := range c.products {
		inputs[idx], err = p.In.Uint64()
		if err != nil {
			return nil, nil, fmt.Errorf("product %d: %w", idx, err)
		}
		outputs[idx], err = p.Out.Uint64()
		if err != nil {
			return nil, nil, fmt.Errorf("product %d: %w", idx, err)
		}
	}
	return
}

// Entropy returns the entropy of the product lines.
func (c *Cover) Entropy() float64 {
	lines := make([]string, len(c.products))
	for idx, p := range c.products {
		lines[idx] = p.String()
	}
	return Entropy(lines)
}

// OutputEntropies returns the entropy of each output column.
func (c *Cover) OutputEntropies() []float64 {
	result := make([]float64, len(c.outputs))
	column := make([]Output, len(c.products))
	for o := range c.outputs {
		for idx, p := range c.products {
			column[idx] = p.Out[o]
		}
		result[o] = Entropy(column)
	}
	return result
}

// Concat returns a new cover holding the products of c followed by the
// products of o. The name, type, and labels are taken from c. The
// covers must have the same arity.
func (c *Cover) Concat(o *Cover) (*Cover, error) {
	if len(c.inputs) != len(o.inputs) || len(c.outputs) != len(o.outputs) {
		return nil, fmt.Errorf("%w: concat %d/%d with %d/%d",
			ErrInvalidArity, len(c.inputs), len(c.outputs),
			len(o.inputs), len(o.outputs))
	}
	result := &Cover{
		name:     c.name,
		typ:      c.typ,
		inputs:   slices.Clone(c.inputs),
		outputs:  slices.Clone(c.outputs),
		products: make([]Product, 0, len(c.products)+len(o.products)),
	}
	for _, p := range c.products {
		result.products = append(result.products, p.clone())
	}
	for _, p := range o.products {
		result.products = append(result.products, p.clone())
	}
	return result, nil
}

// Equal tests if the covers have the same name, type, labels, and
// products in the same order.
func (c *Cover) Equal(o *Cover) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.name != o.name || c.typ != o.typ ||
		!slices.Equal(c.inputs, o.inputs) ||
		!slices.Equal(c.outputs, o.outputs) ||
		len(c.products) != len(o.products) {
		return false
	}
	for idx, p := range c.products {
		if !slices.Equal(p.In, o.products[idx].In) ||
			!slices.Equal(p.Out, o.products[idx].Out) {
			return false
		}
	}
	return true
}

// String returns the product lines of the cover separated by
// newlines.
func (c *Cover) String() string {
	lines := make([]string, len(c.products))
	for idx, p := range c.products {
		lines[idx] = p.String()
	}
	return strings.Join(lines, "\n")
}

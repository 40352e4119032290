//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package table

import (
	"errors"
	"slices"
	"testing"
)

func testCover(t *testing.T) *Cover {
	c, err := ParseCover(
		[]string{"0-0", "001", "10-", "110", "111"},
		[]string{"11", "10", "01", "0~", "11"}, nil)
	if err != nil {
		t.Fatalf("ParseCover failed: %v", err)
	}
	return c
}

func TestCoverBasic(t *testing.T) {
	c := testCover(t)
	if c.NumInputs() != 3 || c.NumOutputs() != 2 || c.NumProducts() != 5 {
		t.Fatalf("arity: %d/%d/%d", c.NumInputs(), c.NumOutputs(),
			c.NumProducts())
	}
	if c.Type() != DefaultType || c.Name() != DefaultName {
		t.Errorf("type %q, name %q", c.Type(), c.Name())
	}
	onset, err := c.Onset("o0")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(onset, []int{0, 1, 4}) {
		t.Errorf("onset(o0)=%v", onset)
	}
	onset, err = c.Onset("o1")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(onset, []int{0, 2, 4}) {
		t.Errorf("onset(o1)=%v", onset)
	}
	if _, err := c.Onset("o2"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Onset(o2): %v", err)
	}

	products := []string{
		"~i0 & ~i2",
		"~i0 & ~i1 & i2",
		"i0 & ~i1",
		"i0 & i1 & ~i2",
		"i0 & i1 & i2",
	}
	for i, expected := range products {
		if got := c.InputProduct(i); got != expected {
			t.Errorf("InputProduct(%d)=%q, expected %q", i, got, expected)
		}
	}

	expected := "0-0 11\n001 10\n10- 01\n110 0~\n111 11"
	if c.String() != expected {
		t.Errorf("String()=%q, expected %q", c.String(), expected)
	}
}

func TestCoverAllDontCareProduct(t *testing.T) {
	c, err := ParseCover([]string{"--"}, []string{"1"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.InputProduct(0); got != "" {
		t.Errorf("InputProduct(0)=%q", got)
	}
}

func TestCoverToIndices(t *testing.T) {
	c, err := ParseCover(
		[]string{"00", "01", "11"},
		[]string{"101", "010", "111"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	in, out, err := c.ToIndices()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(in, []uint64{0, 1, 3}) {
		t.Errorf("inputs %v", in)
	}
	if !slices.Equal(out, []uint64{5, 2, 7}) {
		t.Errorf("outputs %v", out)
	}

	_, _, err = testCover(t).ToIndices()
	if !errors.Is(err, ErrDontCareNotAllowed) {
		t.Errorf("expected ErrDontCareNotAllowed, got %v", err)
	}

	c, err = ParseCover([]string{"01"}, []string{"1~"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = c.ToIndices()
	if !errors.Is(err, ErrDontCareNotAllowed) {
		t.Errorf("output DC: expected ErrDontCareNotAllowed, got %v", err)
	}
}

func TestCoverEntropy(t *testing.T) {
	c, err := ParseCover(
		[]string{"00", "01", "10", "11"},
		[]string{"10", "10", "01", "0~"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if h := c.Entropy(); h != 2 {
		t.Errorf("Entropy()=%v, expected 2", h)
	}
	h := c.OutputEntropies()
	if len(h) != 2 || h[0] != 1 || h[1] != 1.5 {
		t.Errorf("OutputEntropies()=%v", h)
	}

	same, err := ParseCover([]string{"0", "1"}, []string{"1", "1"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if h := same.OutputEntropies(); h[0] != 0 {
		t.Errorf("single-valued column entropy %v", h[0])
	}
}

func TestCoverConcat(t *testing.T) {
	a, err := ParseCover([]string{"0-"}, []string{"1"}, &Options{
		Name:    "left",
		Inputs:  []string{"a", "b"},
		Outputs: []string{"y"},
	})
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseCover([]string{"11", "10"}, []string{"0", "1"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := a.Concat(b)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "left" || !slices.Equal(c.Inputs(), []string{"a", "b"}) {
		t.Errorf("name %q inputs %v", c.Name(), c.Inputs())
	}
	if c.String() != "0- 1\n11 0\n10 1" {
		t.Errorf("concat: %q", c.String())
	}
	if a.NumProducts() != 1 || b.NumProducts() != 2 {
		t.Errorf("operands modified")
	}

	d, err := ParseCover([]string{"1"}, []string{"1"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Concat(d); !errors.Is(err, ErrInvalidArity) {
		t.Errorf("expected ErrInvalidArity, got %v", err)
	}
}

var coverErrorTests = []struct {
	inputs  []string
	outputs []string
	err     error
}{
	{
		inputs:  []string{"00", "0"},
		outputs: []string{"1", "1"},
		err:     ErrInvalidArity,
	},
	{
		inputs:  []string{"00", "01"},
		outputs: []string{"1", "10"},
		err:     ErrInvalidArity,
	},
	{
		inputs:  []string{"0x"},
		outputs: []string{"1"},
		err:     ErrInvalidSymbol,
	},
	{
		inputs:  []string{"01"},
		outputs: []string{"2"},
		err:     ErrInvalidSymbol,
	},
	{
		inputs:  []string{"01"},
		outputs: []string{"1", "0"},
		err:     ErrInvalidArity,
	},
}

func TestCoverErrors(t *testing.T) {
	for idx, test := range coverErrorTests {
		_, err := ParseCover(test.inputs, test.outputs, nil)
		if !errors.Is(err, test.err) {
			t.Errorf("test %d: expected %v, got %v", idx, test.err, err)
		}
	}
}

var symbolErrorTests = []Product{
	{
		In:  InputCube{I0, Input(7)},
		Out: OutputCube{O1},
	},
	{
		In:  InputCube{I0, IDC},
		Out: OutputCube{ODC + 1},
	},
}

func TestCoverInvalidSymbols(t *testing.T) {
	for idx, p := range symbolErrorTests {
		_, err := NewCover(2, 1, []Product{p}, nil)
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("test %d: expected ErrInvalidSymbol, got %v", idx, err)
		}
	}
}

func TestCoverOwnsProducts(t *testing.T) {
	products := []Product{
		{
			In:  InputCube{I0, IDC},
			Out: OutputCube{O1},
		},
	}
	c, err := NewCover(2, 1, products, nil)
	if err != nil {
		t.Fatal(err)
	}
	products[0].In[0] = I1
	c.Product(0).Out[0] = O0
	c.Products()[0].In[1] = I0
	if c.String() != "0- 1" {
		t.Errorf("cover modified: %q", c.String())
	}
}

func TestSymbols(t *testing.T) {
	for _, g := range []byte("-~") {
		in, ok := ParseInput(g)
		if !ok || in != IDC {
			t.Errorf("ParseInput(%c)=%v", g, in)
		}
		out, ok := ParseOutput(g)
		if !ok || out != ODC {
			t.Errorf("ParseOutput(%c)=%v", g, out)
		}
	}
	if IDC.Glyph() != '-' || ODC.Glyph() != '~' {
		t.Errorf("don't-care glyphs: %c %c", IDC.Glyph(), ODC.Glyph())
	}
	if _, ok := ParseInput('x'); ok {
		t.Errorf("ParseInput(x) succeeded")
	}

	cube := InputCube{I1, IDC, I0}
	for idx := uint64(0); idx < 8; idx++ {
		expected := idx == 4 || idx == 6
		if cube.Matches(idx) != expected {
			t.Errorf("%v.Matches(%03b)=%v", cube, idx, !expected)
		}
	}
}

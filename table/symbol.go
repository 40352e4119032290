//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package table

import (
	"fmt"
	"strings"
)

// Input specifies an input cube symbol.
type Input byte

// Input symbols.
const (
	I0 Input = iota
	I1
	IDC
)

// Glyph returns the PLA text glyph of the input symbol.
func (s Input) Glyph() byte {
	switch s {
	case I0:
		return '0'
	case I1:
		return '1'
	default:
		return '-'
	}
}

func (s Input) String() string {
	switch s {
	case I0, I1, IDC:
		return string(s.Glyph())
	default:
		return fmt.Sprintf("{Input %d}", s)
	}
}

// Output specifies an output cube symbol. The output don't-care is a
// different value than the input don't-care even though both decode
// from the same glyphs.
type Output byte

// Output symbols.
const (
	O0 Output = iota
	O1
	ODC
)

// Glyph returns the PLA text glyph of the output symbol.
func (s Output) Glyph() byte {
	switch s {
	case O0:
		return '0'
	case O1:
		return '1'
	default:
		return '~'
	}
}

func (s Output) String() string {
	switch s {
	case O0, O1, ODC:
		return string(s.Glyph())
	default:
		return fmt.Sprintf("{Output %d}", s)
	}
}

// decodeGlyph maps a text glyph to its ternary value 0, 1, or 2
// (don't-care). The mapping is shared by inputs and outputs.
func decodeGlyph(g byte) (int, bool) {
	switch g {
	case '0':
		return 0, true
	case '1':
		return 1, true
	case '-', '~':
		return 2, true
	default:
		return 0, false
	}
}

// ParseInput decodes an input symbol glyph.
func ParseInput(g byte) (Input, bool) {
	v, ok := decodeGlyph(g)
	return Input(v), ok
}

// ParseOutput decodes an output symbol glyph.
func ParseOutput(g byte) (Output, bool) {
	v, ok := decodeGlyph(g)
	return Output(v), ok
}

// InputCube defines the input part of a product.
type InputCube []Input

// ParseInputCube parses the input cube from its text form.
func ParseInputCube(s string) (InputCube, error) {
	result := make(InputCube, len(s))
	for i := 0; i < len(s); i++ {
		sym, ok := ParseInput(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: '%c' at position %d of input %q",
				ErrInvalidSymbol, s[i], i, s)
		}
		result[i] = sym
	}
	return result, nil
}

func (c InputCube) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, s := range c {
		sb.WriteByte(s.Glyph())
	}
	return sb.String()
}

// DontCares returns the number of don't-care positions in the cube.
func (c InputCube) DontCares() int {
	var count int
	for _, s := range c {
		if s == IDC {
			count++
		}
	}
	return count
}

// Matches tests if the concrete input combination idx belongs to the
// cube. The first cube position is the most significant bit of idx.
func (c InputCube) Matches(idx uint64) bool {
	n := len(c)
	for i, s := range c {
		if s == IDC {
			continue
		}
		bit := (idx >> uint(n-1-i)) & 1
		if (bit == 1) != (s == I1) {
			return false
		}
	}
	return true
}

// Uint64 returns the cube as an unsigned integer. The cube must not
// contain don't-cares.
func (c InputCube) Uint64() (uint64, error) {
	if len(c) > 64 {
		return 0, fmt.Errorf("%w: %d input bits do not fit in 64 bits",
			ErrInvalidArity, len(c))
	}
	var v uint64
	for _, s := range c {
		v <<= 1
		switch s {
		case I0:
		case I1:
			v |= 1
		default:
			return 0, ErrDontCareNotAllowed
		}
	}
	return v, nil
}

// pattern returns the cube value with don't-care positions cleared
// and the bit shifts of the don't-care positions, most significant
// first.
func (c InputCube) pattern() (uint64, []uint) {
	var base uint64
	var dcs []uint
	n := len(c)
	for i, s := range c {
		shift := uint(n - 1 - i)
		switch s {
		case I1:
			base |= 1 << shift
		case IDC:
			dcs = append(dcs, shift)
		}
	}
	return base, dcs
}

func (c InputCube) clone() InputCube {
	return append(InputCube(nil), c...)
}

// OutputCube defines the output part of a product.
type OutputCube []Output

// ParseOutputCube parses the output cube from its text form.
func ParseOutputCube(s string) (OutputCube, error) {
	result := make(OutputCube, len(s))
	for i := 0; i < len(s); i++ {
		sym, ok := ParseOutput(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: '%c' at position %d of output %q",
				ErrInvalidSymbol, s[i], i, s)
		}
		result[i] = sym
	}
	return result, nil
}

func (c OutputCube) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, s := range c {
		sb.WriteByte(s.Glyph())
	}
	return sb.String()
}

// HasDontCare tests if the cube contains don't-care outputs.
func (c OutputCube) HasDontCare() bool {
	for _, s := range c {
		if s == ODC {
			return true
		}
	}
	return false
}

// Bits returns the fully defined bit string of the cube. Don't-care
// outputs are written as '0'.
func (c OutputCube) Bits() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, s := range c {
		if s == O1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Uint64 returns the cube as an unsigned integer. The cube must not
// contain don't-cares.
func (c OutputCube) Uint64() (uint64, error) {
	if len(c) > 64 {
		return 0, fmt.Errorf("%w: %d output bits do not fit in 64 bits",
			ErrInvalidArity, len(c))
	}
	var v uint64
	for _, s := range c {
		v <<= 1
		switch s {
		case O0:
		case O1:
			v |= 1
		default:
			return 0, ErrDontCareNotAllowed
		}
	}
	return v, nil
}

func (c OutputCube) clone() OutputCube {
	return append(OutputCube(nil), c...)
}

// bitString returns v as a zero-padded binary string of n bits, most
// significant bit first.
func bitString(v uint64, n int) string {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		if (v>>uint(n-1-i))&1 == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

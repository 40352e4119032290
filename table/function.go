//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package table implements the dense truth table and the sparse
// ternary cover representations of multi-output Boolean functions,
// and the conversions between them.
package table

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

const (
	// DefaultName is the name of tables and covers created without
	// an explicit name.
	DefaultName = "ckt"
	// DefaultType is the default PLA type of covers.
	DefaultType = "fd"
)

// Function is a Boolean function of fixed arity. The only
// implementations are *Dense and *Cover so consumers can switch over
// the two representations.
type Function interface {
	// Name returns the function name.
	Name() string
	// Inputs returns the input labels.
	Inputs() []string
	// Outputs returns the output labels.
	Outputs() []string
	NumInputs() int
	NumOutputs() int
	// Onset returns the row or product indices where the output is 1.
	Onset(output string) ([]int, error)
	// InputProduct returns the literal conjunction of the row or
	// product i.
	InputProduct(i int) string

	function()
}

// Options specify optional attributes for new tables and covers.
type Options struct {
	Name    string
	Inputs  []string
	Outputs []string
	// Type is the PLA type. It applies only to covers.
	Type string
}

func (opts *Options) name() string {
	if opts == nil || len(opts.Name) == 0 {
		return DefaultName
	}
	return opts.Name
}

func (opts *Options) inputs() []string {
	if opts == nil {
		return nil
	}
	return opts.Inputs
}

func (opts *Options) outputs() []string {
	if opts == nil {
		return nil
	}
	return opts.Outputs
}

func (opts *Options) plaType() string {
	if opts == nil || len(opts.Type) == 0 {
		return DefaultType
	}
	return opts.Type
}

// DefaultLabels returns count labels prefix0, prefix1, ...
func DefaultLabels(prefix string, count int) []string {
	return lo.Times(count, func(i int) string {
		return fmt.Sprintf("%s%d", prefix, i)
	})
}

// makeLabels validates the explicit labels or creates default labels
// if labels is nil.
func makeLabels(kind, prefix string, labels []string, count int) (
	[]string, error) {

	if labels == nil {
		return DefaultLabels(prefix, count), nil
	}
	if len(labels) != count {
		return nil, fmt.Errorf("%w: %d %s labels for %d %ss",
			ErrInvalidArity, len(labels), kind, count, kind)
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, l := range labels {
		if len(l) == 0 || strings.IndexFunc(l, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("%w: %s label %q", ErrInvalidLabel, kind, l)
		}
		if !seen.Add(l) {
			return nil, fmt.Errorf("%w: %s label %q", ErrDuplicateLabel,
				kind, l)
		}
	}
	return slices.Clone(labels), nil
}

func labelIndex(labels []string, label string) (int, error) {
	idx := lo.IndexOf(labels, label)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return idx, nil
}

// literals returns the literal conjunction of the input positions.
// Don't-care positions contribute no literal.
func literals(labels []string, cube InputCube) string {
	var terms []string
	for i, s := range cube {
		switch s {
		case I0:
			terms = append(terms, "~"+labels[i])
		case I1:
			terms = append(terms, labels[i])
		}
	}
	return strings.Join(terms, " & ")
}

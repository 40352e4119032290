//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package table

import (
	"math"
)

// Entropy computes the Shannon entropy, in bits, of the multiset of
// values. The entropy of an empty multiset is 0.
func Entropy[T comparable](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[T]int)
	var order []T
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	n := float64(len(values))

	var h float64
	for _, v := range order {
		p := float64(counts[v]) / n
		h -= p * math.Log2(p)
	}
	return h
}

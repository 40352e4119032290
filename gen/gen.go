//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gen generates random truth tables.
package gen

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/markkurossi/truthtables/env"
	"github.com/markkurossi/truthtables/table"
)

// Random creates a dense table with numInputs inputs and numOutputs
// outputs. Each output bit is independently 1 with the probability
// bias. The random values are read from cfg.GetRandom().
func Random(cfg *env.Config, numInputs, numOutputs int, bias float64) (
	*table.Dense, error) {

	if numInputs < 0 || numInputs > table.MaxExpandInputs {
		return nil, fmt.Errorf("%w: %d inputs", table.ErrInvalidArity,
			numInputs)
	}
	if numOutputs <= 0 {
		return nil, fmt.Errorf("%w: %d outputs", table.ErrInvalidArity,
			numOutputs)
	}
	if !(bias >= 0 && bias <= 1) {
		return nil, fmt.Errorf("gen: bias %v not in [0,1]", bias)
	}
	rand := cfg.GetRandom()

	rows := make([]string, 1<<uint(numInputs))
	row := make([]byte, numOutputs)
	var buf [8]byte
	for i := range rows {
		for o := range row {
			if _, err := io.ReadFull(rand, buf[:]); err != nil {
				return nil, err
			}
			// 53-bit uniform value in [0,1).
			v := float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
			if v < bias {
				row[o] = '1'
			} else {
				row[o] = '0'
			}
		}
		rows[i] = string(row)
	}
	cfg.Debugf("gen: %d rows, %d outputs, bias=%v\n",
		len(rows), numOutputs, bias)

	return table.NewDense(rows, nil)
}

// Uniform creates a random dense table where each output bit is 1
// with the probability 0.5.
func Uniform(cfg *env.Config, numInputs, numOutputs int) (
	*table.Dense, error) {
	return Random(cfg, numInputs, numOutputs, 0.5)
}

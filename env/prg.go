//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic pseudo-random byte stream. It is used as
// Config.Rand to create reproducible random tables.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a pseudo-random generator from the seed.
func NewPRG(seed uint64) *PRG {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	binary.BigEndian.PutUint64(key[:], seed)

	// Key and nonce sizes are fixed so this never fails.
	c, _ := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	return &PRG{
		cipher: c,
	}
}

// Read implements io.Reader. It always fills the buffer.
func (prg *PRG) Read(p []byte) (int, error) {
	clear(p)
	prg.cipher.XORKeyStream(p, p)
	return len(p), nil
}

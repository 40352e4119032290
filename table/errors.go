//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package table

import (
	"errors"
)

// Table and cover validation errors.
var (
	ErrInvalidArity       = errors.New("table: invalid arity")
	ErrUnknownLabel       = errors.New("table: unknown label")
	ErrDontCareNotAllowed = errors.New("table: don't-care not allowed")
	ErrDuplicateLabel     = errors.New("table: duplicate label")
	ErrInvalidLabel       = errors.New("table: invalid label")
	ErrInvalidSymbol      = errors.New("table: invalid symbol")
)

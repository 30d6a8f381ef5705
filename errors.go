// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package coalesced

import "errors"

// Errors returned by New and Put. Put leaves the table unmodified on every error.
var (
	ErrInvalidCapacity = errors.New("coalesced: invalid capacity")
	ErrTableFull       = errors.New("coalesced: table full")
	ErrNoLinkSpace     = errors.New("coalesced: no slot left to extend chain")
	ErrDestroyed       = errors.New("coalesced: table destroyed")
	ErrUnknownHash     = errors.New("coalesced: unknown hash function")
	ErrUnknownKind     = errors.New("coalesced: unknown value kind")
	ErrSizeMismatch    = errors.New("coalesced: payload size does not match kind")
)

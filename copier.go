// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package coalesced

import (
	"fmt"

	"leb.io/coalesced/rational"
)

// A Copier gives the table owned copies of payloads and takes them back.
// The table calls Release exactly once for every payload Copy returned,
// either when the key is updated or when the table is destroyed.
type Copier interface {
	Copy(payload []byte, kind ValueKind) ([]byte, error)
	Release(payload []byte, kind ValueKind)
}

// SizedCopier copies payloads whose size is fixed per kind.
// A size of 0 means any length is accepted for that kind.
// Kinds missing from Sizes are rejected.
type SizedCopier struct {
	Sizes map[ValueKind]int
}

// DefaultCopier knows the sizes of the shell's variable kinds.
func DefaultCopier() *SizedCopier {
	return &SizedCopier{Sizes: map[ValueKind]int{
		Matrix:   0,
		Rational: rational.Size,
	}}
}

func (c *SizedCopier) Copy(payload []byte, kind ValueKind) ([]byte, error) {
	size, ok := c.Sizes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if size != 0 && len(payload) != size {
		return nil, fmt.Errorf("%w: %v wants %d bytes, got %d", ErrSizeMismatch, kind, size, len(payload))
	}
	b := make([]byte, len(payload))
	copy(b, payload)
	return b, nil
}

// Release drops the payload. Slices already handed out by Get keep
// the bytes they had.
func (c *SizedCopier) Release(payload []byte, kind ValueKind) {}

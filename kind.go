// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package coalesced

import "fmt"

// ValueKind tags the payload stored with a key.
type ValueKind uint8

const (
	Matrix ValueKind = iota
	Rational

	numKinds
)

var kindNames = [numKinds]string{
	Matrix:   "matrix",
	Rational: "rational",
}

func (k ValueKind) Valid() bool {
	return k < numKinds
}

func (k ValueKind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// ParseKind is the inverse of String.
func ParseKind(s string) (ValueKind, error) {
	for k, n := range kindNames {
		if n == s {
			return ValueKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

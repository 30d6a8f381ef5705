// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package random picks evenly distributed 32 bit integers from a range.
package random

import (
	"errors"
	"fmt"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var (
	ErrNegativeMax       = errors.New("random: negative max")
	ErrMinGreaterThanMax = errors.New("random: min greater than max")
)

// AtMost returns a value picked uniformly from [0, max].
func AtMost(max int32) (int32, error) {
	if max < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeMax, max)
	}
	return InRange(0, max)
}

// InRange returns a value picked uniformly from [min, max].
// If min == max the result is max.
func InRange(min, max int32) (int32, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrMinGreaterThanMax, min, max)
	}
	if min == max {
		return max, nil
	}
	// at most 1<<32 values so the span always fits in an int63
	span := int64(max) - int64(min) + 1
	return int32(int64(min) + fastrand.Int63n(span)), nil
}

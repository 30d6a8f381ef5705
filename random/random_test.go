// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int32
	}{
		{"small", 1, 6},
		{"negative", -10, -5},
		{"straddle", -3, 3},
		{"full", math.MinInt32, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v, err := InRange(tt.min, tt.max)
				require.NoError(t, err)
				require.GreaterOrEqual(t, v, tt.min)
				require.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestInRangeCoversAllValues(t *testing.T) {
	seen := make(map[int32]int)
	for i := 0; i < 10000; i++ {
		v, err := InRange(0, 3)
		require.NoError(t, err)
		seen[v]++
	}
	assert.Len(t, seen, 4)
}

func TestInRangeEqual(t *testing.T) {
	v, err := InRange(7, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}

func TestErrors(t *testing.T) {
	_, err := InRange(2, 1)
	require.ErrorIs(t, err, ErrMinGreaterThanMax)

	_, err = AtMost(-1)
	require.ErrorIs(t, err, ErrNegativeMax)

	v, err := AtMost(0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimes(t *testing.T) {
	var got []int
	Primes(0, 50, func(p int) bool {
		got = append(got, p)
		return true
	})
	require.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, got)
}

func TestPrimesStop(t *testing.T) {
	var got []int
	Primes(100, 0, func(p int) bool {
		got = append(got, p)
		return len(got) < 3
	})
	require.Equal(t, []int{101, 103, 107}, got)
}

func TestPrimesAcrossSegments(t *testing.T) {
	cnt := 0
	Primes(1, 3*segment, func(p int) bool {
		cnt++
		return true
	})
	// pi(49152) = 5051
	assert.Equal(t, 5051, cnt)
}

func TestNextPrime(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 2},
		{2, 2},
		{4, 5},
		{24, 29},
		{30, 31},
		{1000, 1009},
		{65536, 65537},
		{1 << 20, 1048583},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextPrime(tt.n), "NextPrime(%d)", tt.n)
	}
}

func TestIsPrime(t *testing.T) {
	assert.True(t, IsPrime(1021))
	assert.False(t, IsPrime(1023))
	assert.False(t, IsPrime(1))
}

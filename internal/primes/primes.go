// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package primes finds primes with a segmented sieve of Eratosthenes.
// Used to pick prime table capacities so hash mod capacity spreads well.
package primes

import "github.com/willf/bitset"

// numbers sieved per segment
const segment = 1 << 14

var small = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// Primes calls f with each prime p, n <= p <= limit, in increasing order
// until f returns false. A limit <= 0 means no limit.
func Primes(n, limit int, f func(p int) bool) {
	if n < 2 {
		n = 2
	}
	composite := bitset.New(segment)
	for lo := n; limit <= 0 || lo <= limit; lo += segment {
		hi := lo + segment
		composite.ClearAll()
		for d := 2; d*d < hi; d++ {
			start := (lo + d - 1) / d * d
			if start < d*d {
				start = d * d
			}
			for m := start; m < hi; m += d {
				composite.Set(uint(m - lo))
			}
		}
		for i, ok := composite.NextClear(0); ok && i < segment; i, ok = composite.NextClear(i + 1) {
			p := lo + int(i)
			if limit > 0 && p > limit {
				return
			}
			if !f(p) {
				return
			}
		}
	}
}

// NextPrime returns the smallest prime >= n.
func NextPrime(n int) (p int) {
	for _, s := range small {
		if s >= n {
			return s
		}
	}
	Primes(n, 0, func(v int) bool {
		p = v
		return false
	})
	return
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	return n >= 2 && NextPrime(n) == n
}

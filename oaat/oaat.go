// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package oaat implements Bob Jenkins' one-at-a-time hash.
// See http://www.burtleburtle.net/bob/hash/doobs.html
//
// The hash is byte at a time so the Digest below does not buffer,
// each Write mixes its bytes into the running state immediately.
package oaat

import "hash"

// The size of a one-at-a-time hash in bytes.
const Size = 4

type Digest struct {
	hash uint32
	clen int
}

var (
	_ hash.Hash   = new(Digest)
	_ hash.Hash32 = new(Digest)
)

func mix(h uint32, p []byte) uint32 {
	for _, b := range p {
		h += uint32(b)
		h += h << 10
		h ^= h >> 6
	}
	return h
}

func final(h uint32) uint32 {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Sum32 returns the one-at-a-time hash of key.
// The empty key hashes to 0.
func Sum32(key []byte) uint32 {
	return final(mix(0, key))
}

// SumString is Sum32 for a string without the conversion copy.
func SumString(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h += uint32(key[i])
		h += h << 10
		h ^= h >> 6
	}
	return final(h)
}

// New returns a new hash.Hash32 that computes the one-at-a-time hash.
func New() hash.Hash32 {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset the hash state.
func (d *Digest) Reset() {
	d.hash = 0
	d.clen = 0
}

// Return the size of the resulting hash.
func (d *Digest) Size() int { return Size }

// Return the blocksize of the hash which in this case is 1 byte.
func (d *Digest) BlockSize() int { return 1 }

// Write mixes p into the running hash. It never fails.
func (d *Digest) Write(p []byte) (nn int, err error) {
	d.hash = mix(d.hash, p)
	d.clen += len(p)
	return len(p), nil
}

// Return the current hash as a byte slice. The state is not modified so more data can be written.
func (d *Digest) Sum(b []byte) []byte {
	h := final(d.hash)
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}

// Return the current hash as a 32 bit unsigned type.
func (d *Digest) Sum32() uint32 {
	return final(d.hash)
}

// Len returns the number of bytes written since the last Reset.
func (d *Digest) Len() int {
	return d.clen
}

// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package coalesced

import (
	"fmt"

	"github.com/dataence/cityhash"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"leb.io/aeshash"
	"leb.io/coalesced/oaat"
)

// HashFunc maps a key to 32 bits. The home slot of a key is HashFunc(key) % capacity.
type HashFunc func(key []byte) uint32

const DefaultHash = "oaat"

// HashNames lists the names accepted by WithHash.
var HashNames = []string{"oaat", "murmur3", "xxh3", "city", "aes"}

func fold64(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}

// Select a hash function by name.
func getHash(hashName string) (HashFunc, error) {
	switch hashName {
	case "", "oaat":
		return oaat.Sum32, nil
	case "murmur3":
		return murmur3.Sum32, nil
	case "xxh3":
		return func(b []byte) uint32 { return fold64(xxh3.Hash(b)) }, nil
	case "city":
		return func(b []byte) uint32 { return cityhash.CityHash32(b, uint32(len(b))) }, nil
	case "aes":
		return func(b []byte) uint32 { return fold64(aeshash.Hash(b, 0)) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, hashName)
	}
}

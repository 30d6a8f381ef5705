// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package coalesced implements a fixed capacity hash table that resolves
// collisions with coalesced chaining. Every entry, whether it sits in its
// home slot or arrived through a collision, lives in the same slot array.
// Colliding entries are linked by slot index and new links are taken from
// a free cursor that always points at the lowest empty slot.
//
// The table never grows and entries are never removed. It holds the
// variables of the matrix shell, a payload of bytes tagged with a ValueKind.
//
// A Table is not safe for concurrent use. Get never mutates the table so
// any number of Gets may run together, but never alongside a Put.
package coalesced

import (
	"fmt"
	"log"

	"github.com/willf/bitset"
	"leb.io/coalesced/internal/primes"
)

const noLink = -1

type slot struct {
	key  string
	val  []byte
	kind ValueKind
	link int // next slot on the chain or noLink
}

// Configuration info is collected in this structure.
type Config struct {
	Capacity int    // number of slots, fixed at New
	HashName string // name of hashing function used
}

// Counters. All public, GetCounter gives access by name.
type Counters struct {
	Elements    int // number of occupied slots
	Inserts     int // number of keys added
	Direct      int // inserts that landed in their home slot
	Chained     int // inserts that extended a chain
	Updates     int // puts that replaced the payload of an existing key
	Fails       int // puts that returned an error
	MaxChainLen int // longest chain produced by an insert
}

// The main data structure.
type Table struct {
	Config
	Counters

	slots     []slot
	used      *bitset.BitSet // occupied slots, a clear bit is an empty slot
	free      int            // lowest empty slot, Capacity once none is left
	hf        HashFunc
	cp        Copier
	logger    *log.Logger
	destroyed bool
}

type Option func(t *Table)

// WithHash selects the hash function by name, see HashNames.
func WithHash(name string) Option {
	return func(t *Table) {
		t.HashName = name
	}
}

// WithHashFunc overrides the hash function.
func WithHashFunc(f HashFunc) Option {
	return func(t *Table) {
		t.hf = f
		t.HashName = "custom"
	}
}

// WithCopier sets the Copier used for payloads, DefaultCopier otherwise.
func WithCopier(c Copier) Option {
	return func(t *Table) {
		t.cp = c
	}
}

// WithLogger logs failed puts and teardown to l.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) {
		t.logger = l
	}
}

// New creates a table with capacity slots, all empty.
// A negative capacity asks for the next prime >= -capacity.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity == 0 {
		return nil, ErrInvalidCapacity
	}
	if capacity < 0 {
		capacity = primes.NextPrime(-capacity)
	}

	t := &Table{Config: Config{Capacity: capacity, HashName: DefaultHash}}
	for _, opt := range opts {
		opt(t)
	}
	if t.hf == nil {
		hf, err := getHash(t.HashName)
		if err != nil {
			return nil, err
		}
		t.hf = hf
	}
	if t.cp == nil {
		t.cp = DefaultCopier()
	}

	t.slots = make([]slot, capacity)
	for i := range t.slots {
		t.slots[i].link = noLink
	}
	t.used = bitset.New(uint(capacity))
	return t, nil
}

// Destroy releases every payload through the Copier and drops the slots.
// Calling it again does nothing. Put fails with ErrDestroyed afterwards.
func (t *Table) Destroy() {
	if t.destroyed {
		return
	}
	for i, ok := t.used.NextSet(0); ok; i, ok = t.used.NextSet(i + 1) {
		s := &t.slots[i]
		t.cp.Release(s.val, s.kind)
		*s = slot{}
	}
	t.logf("destroy: released %d payloads", t.Elements)
	t.slots = nil
	t.used = nil
	t.Elements = 0
	t.free = 0
	t.destroyed = true
}

func (t *Table) home(key string) int {
	return int(uint64(t.hf([]byte(key))) % uint64(len(t.slots)))
}

func (t *Table) occupied(i int) bool {
	return t.used.Test(uint(i))
}

// advance moves the free cursor to the first empty slot at or after it.
// The cursor never moves backwards because slots are never vacated.
func (t *Table) advance() {
	i, ok := t.used.NextClear(uint(t.free))
	if !ok || int(i) >= len(t.slots) {
		t.free = len(t.slots)
		return
	}
	t.free = int(i)
}

func (t *Table) occupy(i int, key string, val []byte, kind ValueKind) {
	t.slots[i] = slot{key: key, val: val, kind: kind, link: noLink}
	t.used.Set(uint(i))
	t.Elements++
	t.Inserts++
}

func (t *Table) fail(err error) error {
	t.Fails++
	t.logf("%v", err)
	return err
}

func (t *Table) logf(format string, args ...interface{}) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}

// Put sets key to an owned copy of payload tagged with kind.
// A key already in the table has its payload and kind replaced; its slot,
// its link and the element count do not change.
// A full table rejects every Put, updates included, with ErrTableFull.
func (t *Table) Put(key string, payload []byte, kind ValueKind) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if t.Elements >= len(t.slots) {
		return t.fail(fmt.Errorf("put %q: %w", key, ErrTableFull))
	}

	h := t.home(key)
	if !t.occupied(h) {
		val, err := t.cp.Copy(payload, kind)
		if err != nil {
			return t.fail(fmt.Errorf("put %q: %w", key, err))
		}
		t.occupy(h, key, val, kind)
		t.Direct++
		if t.MaxChainLen < 1 {
			t.MaxChainLen = 1
		}
		// the home slot may have been the one reserved for the next link
		if h == t.free {
			t.advance()
		}
		return nil
	}

	i, n := h, 1
	for {
		s := &t.slots[i]
		if s.key == key {
			return t.update(s, key, payload, kind)
		}
		if s.link == noLink {
			break
		}
		i = s.link
		n++
	}

	// i is the tail of the chain, append there
	if t.free >= len(t.slots) {
		return t.fail(fmt.Errorf("put %q: %w", key, ErrNoLinkSpace))
	}
	val, err := t.cp.Copy(payload, kind)
	if err != nil {
		return t.fail(fmt.Errorf("put %q: %w", key, err))
	}
	f := t.free
	t.slots[i].link = f
	t.occupy(f, key, val, kind)
	t.Chained++
	if n+1 > t.MaxChainLen {
		t.MaxChainLen = n + 1
	}
	t.advance()
	return nil
}

func (t *Table) update(s *slot, key string, payload []byte, kind ValueKind) error {
	val, err := t.cp.Copy(payload, kind)
	if err != nil {
		return t.fail(fmt.Errorf("put %q: %w", key, err))
	}
	t.cp.Release(s.val, s.kind)
	s.val, s.kind = val, kind
	t.Updates++
	return nil
}

// Get returns the payload and kind stored for key.
// The payload is owned by the table and must not be modified. It is
// only guaranteed valid until the next Put of key or Destroy, after
// which the Copier may reclaim it.
func (t *Table) Get(key string) (payload []byte, kind ValueKind, ok bool) {
	if t.destroyed {
		return nil, 0, false
	}
	i := t.home(key)
	if !t.occupied(i) {
		return nil, 0, false
	}
	for {
		s := &t.slots[i]
		if s.key == key {
			return s.val, s.kind, true
		}
		if s.link == noLink {
			return nil, 0, false
		}
		i = s.link
	}
}

// Has reports whether key is in the table.
func (t *Table) Has(key string) bool {
	_, _, ok := t.Get(key)
	return ok
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return t.Elements
}

// Cap returns the number of slots.
func (t *Table) Cap() int {
	return t.Capacity
}

// FreeCursor returns the lowest empty slot, or Cap() once every slot is taken.
func (t *Table) FreeCursor() int {
	return t.free
}

// Get the current load factor.
func (t *Table) LoadFactor() float64 {
	return float64(t.Elements) / float64(t.Capacity)
}

// Home returns the slot index key hashes to.
func (t *Table) Home(key string) int {
	if t.destroyed {
		return -1
	}
	return t.home(key)
}

// Chain returns the slot indexes reachable from slot i by following links,
// starting with i. An empty slot has no chain.
func (t *Table) Chain(i int) []int {
	if t.destroyed || i < 0 || i >= len(t.slots) || !t.occupied(i) {
		return nil
	}
	var c []int
	for n := 0; n < len(t.slots); n++ {
		c = append(c, i)
		if t.slots[i].link == noLink {
			break
		}
		i = t.slots[i].link
	}
	return c
}

// Map calls iter for each key in slot order until iter returns true.
func (t *Table) Map(iter func(key string, val []byte, kind ValueKind) (stop bool)) {
	if t.destroyed {
		return
	}
	for i, ok := t.used.NextSet(0); ok; i, ok = t.used.NextSet(i + 1) {
		s := &t.slots[i]
		if iter(s.key, s.val, s.kind) {
			return
		}
	}
}

// Get the value of a counter by name.
func (t *Table) GetCounter(s string) int {
	switch s {
	case "elements":
		return t.Elements
	case "inserts":
		return t.Inserts
	case "direct":
		return t.Direct
	case "chained":
		return t.Chained
	case "updates":
		return t.Updates
	case "fails":
		return t.Fails
	case "MaxChainLen":
		return t.MaxChainLen
	case "size":
		return t.Capacity
	default:
		panic("GetCounter")
	}
}

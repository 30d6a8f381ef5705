// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package vars holds the variables declared through the matrix shell.
// Variables are rationals or matrices stored encoded in a coalesced table.
//
// A Store is safe for concurrent use. The table's chains can pass through
// any slot, so the whole table is one lock: setters take it exclusively,
// getters share it.
package vars

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"leb.io/coalesced"
	"leb.io/coalesced/matrix"
	"leb.io/coalesced/rational"
)

var (
	ErrUndefined    = errors.New("vars: undefined variable")
	ErrKindMismatch = errors.New("vars: variable has a different kind")
)

type Store struct {
	mu sync.RWMutex
	t  *coalesced.Table
}

// New returns a store that can hold up to capacity variables.
func New(capacity int, opts ...coalesced.Option) (*Store, error) {
	t, err := coalesced.New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Store{t: t}, nil
}

func (s *Store) set(name string, b []byte, kind coalesced.ValueKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Put(name, b, kind)
}

// get decodes the variable while the read lock is held; the table
// owns the bytes and an update could release them.
func (s *Store) get(name string, kind coalesced.ValueKind, decode func([]byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, k, ok := s.t.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	if k != kind {
		return fmt.Errorf("%w: %s is a %v, not a %v", ErrKindMismatch, name, k, kind)
	}
	return decode(b)
}

func (s *Store) SetRational(name string, r rational.Rational) error {
	b, err := r.Encode()
	if err != nil {
		return err
	}
	return s.set(name, b, coalesced.Rational)
}

func (s *Store) SetMatrix(name string, m *matrix.Matrix) error {
	b, err := m.Encode()
	if err != nil {
		return err
	}
	return s.set(name, b, coalesced.Matrix)
}

func (s *Store) Rational(name string) (r rational.Rational, err error) {
	err = s.get(name, coalesced.Rational, func(b []byte) (err error) {
		r, err = rational.Decode(b)
		return
	})
	return
}

func (s *Store) Matrix(name string) (m *matrix.Matrix, err error) {
	err = s.get(name, coalesced.Matrix, func(b []byte) (err error) {
		m, err = matrix.Decode(b)
		return
	})
	return
}

// Kind returns the kind of a variable.
func (s *Store) Kind(name string) (coalesced.ValueKind, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, k, ok := s.t.Get(name)
	return k, ok
}

// Names returns the declared variables in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, s.t.Len())
	s.t.Map(func(key string, _ []byte, _ coalesced.ValueKind) bool {
		names = append(names, key)
		return false
	})
	sort.Strings(names)
	return names
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Len()
}

func (s *Store) Cap() int {
	return s.t.Cap()
}

// Close releases every variable. The store cannot be used afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Destroy()
}

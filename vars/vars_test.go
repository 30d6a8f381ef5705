// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package vars

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"leb.io/coalesced"
	"leb.io/coalesced/matrix"
	"leb.io/coalesced/rational"
)

func TestStore_Rational(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)
	defer s.Close()

	half := rational.Rational{Top: 1, Bottom: 2}
	require.NoError(t, s.SetRational("x", half))

	got, err := s.Rational("x")
	require.NoError(t, err)
	assert.Equal(t, half, got)

	require.NoError(t, s.SetRational("x", rational.Int(3)))
	got, err = s.Rational("x")
	require.NoError(t, err)
	assert.Equal(t, rational.Int(3), got)
	assert.Equal(t, 1, s.Len())

	_, err = s.Rational("y")
	require.ErrorIs(t, err, ErrUndefined)
}

func TestStore_Matrix(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)
	defer s.Close()

	id, _ := matrix.Identity(3)
	require.NoError(t, s.SetMatrix("I", id))

	got, err := s.Matrix("I")
	require.NoError(t, err)
	assert.True(t, got.Equal(id))

	k, ok := s.Kind("I")
	require.True(t, ok)
	assert.Equal(t, coalesced.Matrix, k)

	_, err = s.Rational("I")
	require.ErrorIs(t, err, ErrKindMismatch)

	// a variable may be redeclared with another kind
	require.NoError(t, s.SetRational("I", rational.New()))
	_, err = s.Matrix("I")
	require.ErrorIs(t, err, ErrKindMismatch)
}

func TestStore_Names(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)
	for _, n := range []string{"c", "a", "b"} {
		require.NoError(t, s.SetRational(n, rational.New()))
	}
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
	assert.Equal(t, 8, s.Cap())
}

func TestStore_Full(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	require.NoError(t, s.SetRational("a", rational.New()))
	require.NoError(t, s.SetRational("b", rational.New()))
	err = s.SetRational("c", rational.New())
	require.ErrorIs(t, err, coalesced.ErrTableFull)
}

func TestStore_InvalidCapacity(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, coalesced.ErrInvalidCapacity)
}

func TestStore_Close(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)
	require.NoError(t, s.SetRational("a", rational.New()))
	s.Close()
	_, err = s.Rational("a")
	require.ErrorIs(t, err, ErrUndefined)
	require.ErrorIs(t, s.SetRational("a", rational.New()), coalesced.ErrDestroyed)
}

func TestStore_Concurrent(t *testing.T) {
	const writers, perWriter = 4, 50
	s, err := New(-writers * perWriter)
	require.NoError(t, err)
	defer s.Close()

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				name := fmt.Sprintf("w%d_%d", w, i)
				if err := s.SetRational(name, rational.Int(int32(i))); err != nil {
					t.Error(err)
					return
				}
				if _, err := s.Rational(name); err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Names()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, s.Len())
	for w := 0; w < writers; w++ {
		for i := 0; i < perWriter; i++ {
			v, err := s.Rational(fmt.Sprintf("w%d_%d", w, i))
			require.NoError(t, err)
			assert.Equal(t, rational.Int(int32(i)), v)
		}
	}
}

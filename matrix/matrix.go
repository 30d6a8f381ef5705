// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package matrix implements matrices of rationals, the other kind of
// variable the matrix shell stores.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/binary"
	"leb.io/coalesced/rational"
)

var ErrDimension = errors.New("matrix: dimension mismatch")

// Matrix is a dense row major matrix.
type Matrix struct {
	rows, cols int
	elems      []rational.Rational
}

type wire struct {
	Rows  uint32
	Cols  uint32
	Tops  []int32
	Botts []int32
}

// New returns a rows x cols matrix of zeros.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimension, rows, cols)
	}
	m := &Matrix{rows: rows, cols: cols, elems: make([]rational.Rational, rows*cols)}
	for i := range m.elems {
		m.elems[i] = rational.Int(0)
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.elems[i*n+i] = rational.New()
	}
	return m, nil
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) At(r, c int) rational.Rational {
	return m.elems[r*m.cols+c]
}

func (m *Matrix) Set(r, c int, v rational.Rational) {
	m.elems[r*m.cols+c] = v
}

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	n := &Matrix{rows: m.rows, cols: m.cols, elems: make([]rational.Rational, len(m.elems))}
	copy(n.elems, m.elems)
	return n
}

func (m *Matrix) Equal(n *Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.elems {
		if m.elems[i].Cmp(n.elems[i]) != 0 {
			return false
		}
	}
	return true
}

func (m *Matrix) Add(n *Matrix) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, fmt.Errorf("%w: %dx%d + %dx%d", ErrDimension, m.rows, m.cols, n.rows, n.cols)
	}
	s := m.Copy()
	for i := range s.elems {
		v, err := s.elems[i].Add(n.elems[i])
		if err != nil {
			return nil, err
		}
		s.elems[i] = v
	}
	return s, nil
}

func (m *Matrix) Mul(n *Matrix) (*Matrix, error) {
	if m.cols != n.rows {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d", ErrDimension, m.rows, m.cols, n.rows, n.cols)
	}
	p, _ := New(m.rows, n.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < n.cols; c++ {
			acc := rational.Int(0)
			for k := 0; k < m.cols; k++ {
				t, err := m.At(r, k).Mul(n.At(k, c))
				if err != nil {
					return nil, err
				}
				if acc, err = acc.Add(t); err != nil {
					return nil, err
				}
			}
			p.Set(r, c, acc)
		}
	}
	return p, nil
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(m.At(r, c).String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// Encode serializes m. The length depends on the dimensions.
func (m *Matrix) Encode() ([]byte, error) {
	w := wire{Rows: uint32(m.rows), Cols: uint32(m.cols), Tops: make([]int32, len(m.elems)), Botts: make([]int32, len(m.elems))}
	for i, e := range m.elems {
		w.Tops[i], w.Botts[i] = e.Top, e.Bottom
	}
	return binary.Marshal(&w)
}

// Decode is the inverse of Encode.
func Decode(b []byte) (*Matrix, error) {
	var w wire
	if err := binary.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("matrix: decode: %w", err)
	}
	n := int(w.Rows) * int(w.Cols)
	if n == 0 || len(w.Tops) != n || len(w.Botts) != n {
		return nil, fmt.Errorf("%w: decoded %dx%d with %d elements", ErrDimension, w.Rows, w.Cols, len(w.Tops))
	}
	m := &Matrix{rows: int(w.Rows), cols: int(w.Cols), elems: make([]rational.Rational, n)}
	for i := range m.elems {
		r, err := rational.Make(w.Tops[i], w.Botts[i])
		if err != nil {
			return nil, fmt.Errorf("matrix: decode element %d: %w", i, err)
		}
		m.elems[i] = r
	}
	return m, nil
}

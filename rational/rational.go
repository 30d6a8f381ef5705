// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package rational implements the rational numbers stored as variables
// by the matrix shell. A rational is q/p with q and p signed 32 bit integers.
package rational

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/binary"
)

var (
	ErrZeroDenominator = errors.New("rational: zero denominator")
	ErrOverflow        = errors.New("rational: overflow")
	ErrSyntax          = errors.New("rational: invalid syntax")
)

type Rational struct {
	Top    int32 // numerator
	Bottom int32 // denominator, never 0
}

// wire is what goes through alecthomas/binary.
// Keeping it separate from Rational means Rational can grow methods freely.
type wire struct {
	Top    int32
	Bottom int32
}

// Size is the length of an encoded Rational in bytes.
var Size = len(mustEncode(wire{0, 1}))

func mustEncode(w wire) []byte {
	b, err := binary.Marshal(&w)
	if err != nil {
		panic(err)
	}
	return b
}

// New returns 1/1.
func New() Rational {
	return Rational{Top: 1, Bottom: 1}
}

// Make returns top/bottom reduced to lowest terms with a positive denominator.
func Make(top, bottom int32) (Rational, error) {
	if bottom == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return reduce(int64(top), int64(bottom))
}

// Int returns v/1.
func Int(v int32) Rational {
	return Rational{Top: v, Bottom: 1}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func reduce(top, bottom int64) (Rational, error) {
	if bottom == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if bottom < 0 {
		top, bottom = -top, -bottom
	}
	if g := gcd(top, bottom); g > 1 {
		top /= g
		bottom /= g
	}
	if top < math.MinInt32 || top > math.MaxInt32 || bottom > math.MaxInt32 {
		return Rational{}, ErrOverflow
	}
	return Rational{Top: int32(top), Bottom: int32(bottom)}, nil
}

// Copy returns a copy of r.
func (r Rational) Copy() Rational {
	return r
}

// Reduce returns r in lowest terms.
func (r Rational) Reduce() (Rational, error) {
	return reduce(int64(r.Top), int64(r.Bottom))
}

// operands returns r and s with positive denominators so the int64
// cross products below stay within 2^62.
func operands(r, s Rational) (Rational, Rational, error) {
	r, err := r.Reduce()
	if err != nil {
		return r, s, err
	}
	s, err = s.Reduce()
	return r, s, err
}

func (r Rational) Add(s Rational) (Rational, error) {
	r, s, err := operands(r, s)
	if err != nil {
		return Rational{}, err
	}
	return reduce(int64(r.Top)*int64(s.Bottom)+int64(s.Top)*int64(r.Bottom), int64(r.Bottom)*int64(s.Bottom))
}

func (r Rational) Sub(s Rational) (Rational, error) {
	r, s, err := operands(r, s)
	if err != nil {
		return Rational{}, err
	}
	return reduce(int64(r.Top)*int64(s.Bottom)-int64(s.Top)*int64(r.Bottom), int64(r.Bottom)*int64(s.Bottom))
}

func (r Rational) Mul(s Rational) (Rational, error) {
	r, s, err := operands(r, s)
	if err != nil {
		return Rational{}, err
	}
	return reduce(int64(r.Top)*int64(s.Top), int64(r.Bottom)*int64(s.Bottom))
}

// Div returns r/s. Dividing by zero is ErrZeroDenominator.
func (r Rational) Div(s Rational) (Rational, error) {
	r, s, err := operands(r, s)
	if err != nil {
		return Rational{}, err
	}
	return reduce(int64(r.Top)*int64(s.Bottom), int64(r.Bottom)*int64(s.Top))
}

// Cmp returns -1, 0 or +1 for r < s, r == s and r > s.
func (r Rational) Cmp(s Rational) int {
	a := int64(r.Top) * int64(s.Bottom)
	b := int64(s.Top) * int64(r.Bottom)
	if (r.Bottom < 0) != (s.Bottom < 0) {
		a, b = b, a
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r Rational) IsZero() bool {
	return r.Top == 0
}

func (r Rational) Float64() float64 {
	return float64(r.Top) / float64(r.Bottom)
}

func (r Rational) String() string {
	if r.Bottom == 1 {
		return strconv.FormatInt(int64(r.Top), 10)
	}
	return fmt.Sprintf("%d/%d", r.Top, r.Bottom)
}

// Parse accepts "q/p" or a bare integer "q".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	ts, bs, found := strings.Cut(s, "/")
	top, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 32)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	bottom := int64(1)
	if found {
		bottom, err = strconv.ParseInt(strings.TrimSpace(bs), 10, 32)
		if err != nil {
			return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}
	return Make(int32(top), int32(bottom))
}

// Encode returns the Size byte encoding of r.
func (r Rational) Encode() ([]byte, error) {
	return binary.Marshal(&wire{Top: r.Top, Bottom: r.Bottom})
}

// Decode is the inverse of Encode. The result is in lowest terms
// with a positive denominator.
func Decode(b []byte) (Rational, error) {
	var w wire
	if len(b) != Size {
		return Rational{}, fmt.Errorf("rational: decode %d bytes, want %d", len(b), Size)
	}
	if err := binary.Unmarshal(b, &w); err != nil {
		return Rational{}, err
	}
	return Make(w.Top, w.Bottom)
}

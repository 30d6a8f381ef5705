// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package tabletest fills a table with a series of rational variables
// and verifies they can all be read back.
package tabletest

import (
	"fmt"
	"log"

	"leb.io/coalesced"
	"leb.io/coalesced/random"
	"leb.io/coalesced/rational"
)

// basic data structure methods and a method to get stats
type Tester interface {
	Put(key string, payload []byte, kind coalesced.ValueKind) error
	Get(key string) ([]byte, coalesced.ValueKind, bool)
	GetCounter(stat string) int
}

// return information about what happened during a fill
type FillStats struct {
	Load      float64
	Base      int
	Total     int // slots in the table
	Thresh    int // keys we tried to add
	Used      int // keys added
	Remaining int
	Full      bool  // stopped by ErrTableFull or ErrNoLinkSpace
	Err       error // the error that stopped the fill, if any
}

type TableTest struct {
	Verbose bool
	I       Tester
	Mr      int // max remaining over all fills
}

func New(i Tester) *TableTest {
	return &TableTest{I: i}
}

// Key returns the name of the i'th variable of a fill series.
func Key(i int) string {
	return fmt.Sprintf("v%d", i)
}

// Value returns the payload stored for the i'th variable, i/1 encoded.
func Value(i int) []byte {
	b, err := rational.Int(int32(i)).Encode()
	if err != nil {
		panic(err)
	}
	return b
}

// RandomBase picks a base for a fill series that keeps keys positive.
func RandomBase() int {
	b, err := random.InRange(1, 1<<29)
	if err != nil {
		panic(err)
	}
	return int(b)
}

// Fill adds keys base, base+1, ... until flf*size keys are in or a put fails.
func (d *TableTest) Fill(base int, flf float64) *FillStats {
	var fs FillStats
	fs.Base = base
	fs.Total = d.I.GetCounter("size")
	fs.Thresh = int(float64(fs.Total) * flf)
	fs.Used = fs.Thresh
	amax := base + fs.Thresh

	if d.Verbose {
		log.Printf("fill: base=%d, amax=%d, n=%d", base, amax, fs.Thresh)
	}
	for i := base; i < amax; i++ {
		if err := d.I.Put(Key(i), Value(i), coalesced.Rational); err != nil {
			fs.Err = err
			fs.Full = true
			fs.Used = i - base
			if d.Verbose {
				log.Printf("fill: %d/%d, remain=%d, MaxChainLen=%d, chained=%d: %v",
					i, amax, amax-i, d.I.GetCounter("MaxChainLen"), d.I.GetCounter("chained"), err)
			}
			break
		}
	}
	fs.Remaining = fs.Thresh - fs.Used
	fs.Load = float64(d.I.GetCounter("elements")) / float64(fs.Total)
	if fs.Remaining > d.Mr {
		d.Mr = fs.Remaining
	}
	return &fs
}

// Verify looks up keys base..base+n-1 and checks each value matches its key.
func (d *TableTest) Verify(base, n int) error {
	for i := base; i < base+n; i++ {
		v, kind, ok := d.I.Get(Key(i))
		if !ok {
			return fmt.Errorf("verify: lookup %q failed", Key(i))
		}
		if kind != coalesced.Rational {
			return fmt.Errorf("verify: %q has kind %v", Key(i), kind)
		}
		r, err := rational.Decode(v)
		if err != nil {
			return fmt.Errorf("verify: %q: %w", Key(i), err)
		}
		if int(r.Top) != int(int32(i)) || r.Bottom != 1 {
			return fmt.Errorf("verify: %q = %v, want %d", Key(i), r, i)
		}
	}
	if d.Verbose {
		log.Printf("verify: base=%d, n=%d ok", base, n)
	}
	return nil
}

// Absent checks that none of keys base..base+n-1 are present.
func (d *TableTest) Absent(base, n int) error {
	for i := base; i < base+n; i++ {
		if _, _, ok := d.I.Get(Key(i)); ok {
			return fmt.Errorf("absent: %q unexpectedly present", Key(i))
		}
	}
	return nil
}

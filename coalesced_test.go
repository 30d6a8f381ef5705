// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package coalesced_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "leb.io/coalesced"
	"leb.io/coalesced/internal/tabletest"
)

func TestFillVerify(t *testing.T) {
	for _, hashName := range HashNames {
		for _, capacity := range []int{1, 16, -1000, 4096} {
			t.Run(fmt.Sprintf("%s/%d", hashName, capacity), func(t *testing.T) {
				c, err := New(capacity, WithHash(hashName))
				require.NoError(t, err)
				defer c.Destroy()

				d := tabletest.New(c)
				fs := d.Fill(1, 1.0)
				require.NoError(t, fs.Err)
				require.Equal(t, c.Cap(), fs.Used)
				assert.InDelta(t, 1.0, fs.Load, 1e-9)
				require.NoError(t, d.Verify(fs.Base, fs.Used))
				require.NoError(t, d.Absent(fs.Base+fs.Used, 100))
				assert.Equal(t, c.Cap(), c.FreeCursor())
				assert.Equal(t, c.Direct+c.Chained, c.Inserts)
			})
		}
	}
}

func TestOverfill(t *testing.T) {
	c, err := New(-500)
	require.NoError(t, err)

	d := tabletest.New(c)
	base := tabletest.RandomBase()
	fs := d.Fill(base, 1.5)
	require.True(t, fs.Full)
	require.True(t, errors.Is(fs.Err, ErrTableFull))
	require.Equal(t, c.Cap(), fs.Used)
	require.Equal(t, fs.Thresh-c.Cap(), fs.Remaining)
	require.NoError(t, d.Verify(base, fs.Used))

	// a second pass over the same keys updates in place, but the table is full
	fs = d.Fill(base, 0.5)
	require.ErrorIs(t, fs.Err, ErrTableFull)
	require.Equal(t, c.Cap(), c.Len())
}

func TestRefill(t *testing.T) {
	c, err := New(64)
	require.NoError(t, err)

	d := tabletest.New(c)
	fs := d.Fill(100, 0.5)
	require.NoError(t, fs.Err)
	n := c.Len()

	// same keys again are updates
	fs = d.Fill(100, 0.5)
	require.NoError(t, fs.Err)
	assert.Equal(t, n, c.Len())
	assert.Equal(t, n, c.Updates)
	require.NoError(t, d.Verify(100, n))
}

func benchmarkPut(b *testing.B, hashName string) {
	keys := make([]string, 4096)
	vals := make([][]byte, len(keys))
	for i := range keys {
		keys[i] = tabletest.Key(i)
		vals[i] = tabletest.Value(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; {
		b.StopTimer()
		c, _ := New(-len(keys), WithHash(hashName))
		b.StartTimer()
		for j := 0; j < len(keys) && i < b.N; j, i = j+1, i+1 {
			c.Put(keys[j], vals[j], Rational)
		}
	}
}

func benchmarkGet(b *testing.B, hashName string) {
	c, _ := New(-4096, WithHash(hashName))
	keys := make([]string, c.Cap())
	for i := range keys {
		keys[i] = tabletest.Key(i)
		c.Put(keys[i], tabletest.Value(i), Rational)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%len(keys)])
	}
}

func BenchmarkPutOAAT(b *testing.B)    { benchmarkPut(b, "oaat") }
func BenchmarkPutMurmur3(b *testing.B) { benchmarkPut(b, "murmur3") }
func BenchmarkPutXXH3(b *testing.B)    { benchmarkPut(b, "xxh3") }
func BenchmarkGetOAAT(b *testing.B)    { benchmarkGet(b, "oaat") }
func BenchmarkGetMurmur3(b *testing.B) { benchmarkGet(b, "murmur3") }
func BenchmarkGetXXH3(b *testing.B)    { benchmarkGet(b, "xxh3") }

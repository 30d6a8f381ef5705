// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package coalesced

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// Dump writes one line per slot: index, key, kind, payload length and link.
func (t *Table) Dump(w io.Writer) error {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	fmt.Fprintf(bb, "capacity=%d, elements=%d, free=%d, hash=%s\n", t.Capacity, t.Elements, t.free, t.HashName)
	for i := range t.slots {
		if !t.occupied(i) {
			fmt.Fprintf(bb, "[%d]: -\n", i)
			continue
		}
		s := &t.slots[i]
		fmt.Fprintf(bb, "[%d]: key=%q, kind=%v, len=%d", i, s.key, s.kind, len(s.val))
		if s.link != noLink {
			fmt.Fprintf(bb, ", link=%d", s.link)
		}
		bb.WriteByte('\n')
	}
	_, err := bb.WriteTo(w)
	return err
}

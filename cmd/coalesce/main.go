// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// This program provides a test interface to the coalesced hash table.
// Each trial creates a table, fills it with variables, verifies the
// variables are in the table and that keys past the fill are not.
// Press ^T for the counters of the trial in progress.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"leb.io/coalesced"
	"leb.io/coalesced/internal/siginfo"
	"leb.io/coalesced/internal/tabletest"
	"leb.io/hrff"
)

var capacity = flag.Int("c", -1000, "capacity, negative for the next prime >= -c")
var hash = flag.String("h", coalesced.DefaultHash, "name of hash function {oaat, murmur3, xxh3, city, aes}")
var ntrials = flag.Int("nt", 5, "number of trials")
var ibase = flag.Int("base", 1, "base of fill series")
var ranb = flag.Bool("rb", false, "ignore base, use random base value")
var flf = flag.Float64("flf", 1.0, "fill load factor, > 1 overfills")

var pt = flag.Bool("pt", false, "print summary for each trial")
var ps = flag.Bool("ps", false, "print counters at the end of all trials")
var dump = flag.Bool("d", false, "dump the slots of the last table")
var verbose = flag.Bool("v", false, "verbose")

var cp = flag.String("cp", "", "write cpu profile to file")
var mp = flag.String("mp", "", "write memory profile to this file")

// table of the trial in progress, read by the ^T handler
var current atomic.Value

// lockedTable serializes the fill against the ^T handler.
type lockedTable struct {
	mu sync.Mutex
	t  *coalesced.Table
}

func (l *lockedTable) Put(key string, payload []byte, kind coalesced.ValueKind) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Put(key, payload, kind)
}

func (l *lockedTable) Get(key string) ([]byte, coalesced.ValueKind, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Get(key)
}

func (l *lockedTable) GetCounter(stat string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.GetCounter(stat)
}

func (l *lockedTable) destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Destroy()
}

// snapshot returns the counters and free cursor at one instant.
func (l *lockedTable) snapshot() (cs coalesced.Counters, size, free int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Counters, l.t.Capacity, l.t.FreeCursor()
}

func statAdd(tot, add *coalesced.Counters) {
	tot.Elements += add.Elements
	tot.Inserts += add.Inserts
	tot.Direct += add.Direct
	tot.Chained += add.Chained
	tot.Updates += add.Updates
	tot.Fails += add.Fails
	if add.MaxChainLen > tot.MaxChainLen {
		tot.MaxChainLen = add.MaxChainLen
	}
}

func rate(n int, d time.Duration) hrff.Float64 {
	return hrff.Float64{V: float64(n) * (float64(time.Second) / float64(d)), U: "ops/sec"}
}

func trials(n int) (cs *coalesced.Counters, avg float64, fails int) {
	var acs coalesced.Counters
	var labels = []string{"init", "fill", "verify", "absent"}
	var durations = make([]time.Duration, len(labels))
	var last *lockedTable

	var print = func(i, used int) {
		if *verbose {
			fmt.Printf("    %s: %v %h\n", labels[i], durations[i], rate(used, durations[i]))
		}
	}

	cs = &acs
	tot := 0.0
	for t := 0; t < n; t++ {
		start := time.Now()
		c, err := coalesced.New(*capacity, coalesced.WithHash(*hash))
		if err != nil {
			log.Fatal(err)
		}
		lt := &lockedTable{t: c}
		current.Store(lt)
		durations[0] = time.Since(start)
		if t == 0 {
			var s struct {
				key  string
				val  []byte
				kind coalesced.ValueKind
				link int
			}
			sz := hrff.Int64{V: int64(c.Cap()) * int64(unsafe.Sizeof(s)), U: "bytes"}
			fmt.Printf("trials: capacity=%d, hash=%q, slot array=%H\n", c.Cap(), c.HashName, sz)
		}
		print(0, c.Cap())

		d := tabletest.New(lt)
		d.Verbose = *verbose
		base := *ibase
		if *ranb {
			base = tabletest.RandomBase()
		}

		start = time.Now()
		fs := d.Fill(base, *flf)
		durations[1] = time.Since(start)
		print(1, fs.Used)
		tot += fs.Load
		if fs.Full {
			fails++
		}

		start = time.Now()
		if err := d.Verify(fs.Base, fs.Used); err != nil {
			log.Fatalf("trial %d: %v", t, err)
		}
		durations[2] = time.Since(start)
		print(2, fs.Used)

		start = time.Now()
		if err := d.Absent(fs.Base+fs.Thresh, fs.Used); err != nil {
			log.Fatalf("trial %d: %v", t, err)
		}
		durations[3] = time.Since(start)
		print(3, fs.Used)

		statAdd(cs, &c.Counters)
		if *pt {
			fmt.Printf("trials: trial=%d, full=%v, used=%d/%d, remaining=%d, direct=%d, chained=%d, MaxChainLen=%d, lf=%0.2f\n",
				t, fs.Full, fs.Used, fs.Thresh, fs.Remaining, c.Direct, c.Chained, c.MaxChainLen, c.LoadFactor())
		}
		if last != nil {
			last.destroy()
		}
		last = lt
	}
	if *dump && last != nil {
		if err := last.t.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
	avg = tot / float64(n)
	return
}

func info() {
	lt, ok := current.Load().(*lockedTable)
	if !ok {
		return
	}
	cs, size, free := lt.snapshot()
	fmt.Fprintf(os.Stderr, "info: elements=%d/%d, free=%d, chained=%d, MaxChainLen=%d\n",
		cs.Elements, size, free, cs.Chained, cs.MaxChainLen)
}

func runTrials() {
	stop := siginfo.SetHandler(info)
	defer stop()

	if *ntrials < 1 {
		*ntrials = 1
	}
	if *ntrials == 1 {
		*verbose = true
	}
	cs, avg, fails := trials(*ntrials)
	cpi := float64(cs.Chained) / float64(cs.Inserts)
	fmt.Printf("trials: capacity=%d, hash=%q, trials=%d, fails=%d, avg=%0.4f, cpi=%0.4f, MaxChainLen=%d\n",
		*capacity, *hash, *ntrials, fails, avg, cpi, cs.MaxChainLen)
	if *ps {
		fmt.Printf("trials: cs=%#v\n", *cs)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("mem: Alloc=%h, TotalAlloc=%h, Mallocs=%h\n",
		hrff.Int64{V: int64(m.Alloc), U: "B"}, hrff.Int64{V: int64(m.TotalAlloc), U: "B"}, hrff.Int64{V: int64(m.Mallocs), U: ""})
}

func main() {
	flag.Parse()
	if *cp != "" {
		f, err := os.Create(*cp)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	runTrials()

	if *mp != "" {
		f, err := os.Create(*mp)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}

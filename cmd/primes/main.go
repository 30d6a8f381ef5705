// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Primes prints the primes between its first and optional second argument.
// Handy for picking table capacities.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"leb.io/coalesced/internal/primes"
)

var next = flag.Bool("n", false, "only print the next prime >= the argument")

func main() {
	flag.Parse()
	numbers := flag.Args()
	if len(numbers) < 1 {
		log.Fatal("usage: primes [-n] start [limit]")
	}
	start, err := strconv.Atoi(numbers[0])
	if err != nil {
		log.Fatal(err)
	}
	if *next {
		fmt.Printf("%d\n", primes.NextPrime(start))
		return
	}
	limit := 0
	if len(numbers) > 1 {
		if limit, err = strconv.Atoi(numbers[1]); err != nil {
			log.Fatal(err)
		}
		if limit < start {
			log.Fatalf("limit %d < start %d", limit, start)
		}
	}
	primes.Primes(start, limit, func(p int) bool {
		fmt.Printf("%d\n", p)
		return true
	})
}

// Command bloombench exercises a filter the way a cache or disk layer
// would: bulk insert, bulk lookup of everything inserted, then lookup of a
// disjoint key set to measure the observed false positive rate.
//
// Usage:
//
//	bloombench [nkeys [fprate]]
//
// Both arguments are optional; the defaults are 1048576 keys at a 1% false
// positive target.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kmoroz/fnvbloom"
)

const (
	defaultKeys   = 1 << 20
	defaultFPRate = 0.01

	// keySize is 8 hex digits plus a trailing NUL.
	keySize = 9

	align = "%15s: %6.4f\n"
)

func main() {
	nkeys := defaultKeys
	fpRate := defaultFPRate

	if len(os.Args) > 1 {
		v, err := strconv.Atoi(os.Args[1])
		if err != nil || v <= 0 {
			fatalf("invalid key count %q", os.Args[1])
		}
		nkeys = v
	}
	if len(os.Args) > 2 {
		v, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			fatalf("invalid false positive rate %q", os.Args[2])
		}
		fpRate = v
	}

	fmt.Printf("%15s: %d\n", "values", nkeys)

	f, err := fnvbloom.New(nkeys, fpRate)
	if err != nil {
		fatalf("%v", err)
	}

	// One contiguous buffer, keySize bytes per key.
	buffer := make([]byte, keySize*nkeys)
	key := func(i int) []byte { return buffer[i*keySize : (i+1)*keySize] }

	start := time.Now()
	for i := 0; i < nkeys; i++ {
		copy(key(i), fmt.Sprintf("%08x", i))
	}
	fmt.Printf(align, "initialization", time.Since(start).Seconds())

	start = time.Now()
	for i := 0; i < nkeys; i++ {
		f.Add(key(i))
	}
	fmt.Printf(align, "adding", time.Since(start).Seconds())

	start = time.Now()
	for i := 0; i < nkeys; i++ {
		if !f.Test(key(i)) {
			fmt.Printf("-> WRONG [%s] not found\n", key(i)[:8])
		}
	}
	fmt.Printf(align, "lookup", time.Since(start).Seconds())

	// Overwrite the first byte of every key with a character outside the
	// hex alphabet, making the whole probe set disjoint from what was
	// inserted. Any hit from here on is a false positive.
	for i := 0; i < nkeys; i++ {
		key(i)[0] = 'Z'
	}

	miss := 0
	start = time.Now()
	for i := 0; i < nkeys; i++ {
		if f.Test(key(i)) {
			miss++
		}
	}
	fmt.Printf(align, "lookup", time.Since(start).Seconds())

	fmt.Printf("miss %d nkeys %d rate %g\n", miss, nkeys, float64(miss)/float64(nkeys))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "bloombench: "+format+"\n", args...)
	os.Exit(1)
}

package benchmarks

import (
	"fmt"
	"hash/fnv"
	"testing"

	bab "github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/greatroar/blobloom"
	"github.com/kmoroz/fnvbloom"
	"github.com/zeebo/xxh3"
)

const (
	benchItems  = 1_000_000
	benchFPRate = 0.01
)

// Pre-generate test data to avoid measuring string generation
var testKeys [][]byte
var testKeysStr []string

func init() {
	testKeys = make([][]byte, benchItems)
	testKeysStr = make([]string, benchItems)
	for i := 0; i < benchItems; i++ {
		s := fmt.Sprintf("key-%d", i)
		testKeys[i] = []byte(s)
		testKeysStr[i] = s
	}
}

func newFilter(b *testing.B) *fnvbloom.Filter {
	f, err := fnvbloom.New(benchItems, benchFPRate)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

// ============================================================================
// Sequential Add Benchmarks
// ============================================================================

func BenchmarkAddSequential_FNVBloom(b *testing.B) {
	f := newFilter(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add(testKeys[i%benchItems])
	}
}

func BenchmarkAddSequential_FNVBloomString(b *testing.B) {
	f := newFilter(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.AddString(testKeysStr[i%benchItems])
	}
}

func BenchmarkAddSequential_BitsAndBlooms(b *testing.B) {
	f := bab.NewWithEstimates(benchItems, benchFPRate)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add(testKeys[i%benchItems])
	}
}

func BenchmarkAddSequential_Blobloom(b *testing.B) {
	f := blobloom.NewOptimized(blobloom.Config{
		Capacity: benchItems,
		FPRate:   benchFPRate,
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// blobloom requires pre-hashing
		h := xxhash.Sum64(testKeys[i%benchItems])
		f.Add(h)
	}
}

// ============================================================================
// Sequential Test Benchmarks
// ============================================================================

func BenchmarkTestSequential_FNVBloom(b *testing.B) {
	f := newFilter(b)
	for i := 0; i < benchItems; i++ {
		f.Add(testKeys[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Test(testKeys[i%benchItems])
	}
}

func BenchmarkTestSequential_FNVBloomString(b *testing.B) {
	f := newFilter(b)
	for i := 0; i < benchItems; i++ {
		f.Add(testKeys[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.TestString(testKeysStr[i%benchItems])
	}
}

func BenchmarkTestSequential_BitsAndBlooms(b *testing.B) {
	f := bab.NewWithEstimates(benchItems, benchFPRate)
	for i := 0; i < benchItems; i++ {
		f.Add(testKeys[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Test(testKeys[i%benchItems])
	}
}

func BenchmarkTestSequential_Blobloom(b *testing.B) {
	f := blobloom.NewOptimized(blobloom.Config{
		Capacity: benchItems,
		FPRate:   benchFPRate,
	})
	// Pre-hash keys for fair comparison
	hashes := make([]uint64, benchItems)
	for i := 0; i < benchItems; i++ {
		hashes[i] = xxhash.Sum64(testKeys[i])
		f.Add(hashes[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Has(hashes[i%benchItems])
	}
}

// ============================================================================
// Negative Lookup Benchmarks
// ============================================================================

// Absent keys exercise the short-circuit: most lookups stop at the first
// clear bit instead of walking the whole hash chain.

func BenchmarkTestAbsent_FNVBloom(b *testing.B) {
	f := newFilter(b)
	for i := 0; i < benchItems; i++ {
		f.Add(testKeys[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Test(fmt.Appendf(nil, "absent-%d", i%benchItems))
	}
}

func BenchmarkTestAbsent_BitsAndBlooms(b *testing.B) {
	f := bab.NewWithEstimates(benchItems, benchFPRate)
	for i := 0; i < benchItems; i++ {
		f.Add(testKeys[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Test(fmt.Appendf(nil, "absent-%d", i%benchItems))
	}
}

// ============================================================================
// Memory Allocation Benchmarks
// ============================================================================

func BenchmarkAddAlloc_FNVBloom(b *testing.B) {
	f := newFilter(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add(testKeys[i%benchItems])
	}
}

func BenchmarkAddAlloc_FNVBloomString(b *testing.B) {
	f := newFilter(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.AddString(testKeysStr[i%benchItems])
	}
}

func BenchmarkAddAlloc_BitsAndBlooms(b *testing.B) {
	f := bab.NewWithEstimates(benchItems, benchFPRate)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add(testKeys[i%benchItems])
	}
}

// ============================================================================
// Raw Hash Throughput Benchmarks
// ============================================================================

// The chained multiply/XOR hash is byte-at-a-time; these benchmarks show
// what that costs next to the block-oriented hashes other filters use.

func BenchmarkHash_FNV1a(b *testing.B) {
	b.SetBytes(int64(len(testKeys[0])))
	for i := 0; i < b.N; i++ {
		h := fnv.New32a()
		h.Write(testKeys[i%benchItems])
		h.Sum32()
	}
}

func BenchmarkHash_XXH3(b *testing.B) {
	b.SetBytes(int64(len(testKeys[0])))
	for i := 0; i < b.N; i++ {
		xxh3.Hash(testKeys[i%benchItems])
	}
}

func BenchmarkHash_XXHash64(b *testing.B) {
	b.SetBytes(int64(len(testKeys[0])))
	for i := 0; i < b.N; i++ {
		xxhash.Sum64(testKeys[i%benchItems])
	}
}

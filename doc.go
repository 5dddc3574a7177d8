// Package fnvbloom provides a compact bloom filter with a chained FNV-style
// hash.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are
// possible, but false negatives are not – if the filter says an element is
// not present, it definitely is not. If it says an element might be present,
// it could be a false positive.
//
// # Hashing
//
// Instead of computing k independent hash functions, fnvbloom computes one
// 32-bit multiply/XOR hash over the key and then repeatedly rehashes the
// previous hash value: probe i+1 is the hash of the 4-byte little-endian
// encoding of probe i. One streaming hash primitive therefore yields the
// whole probe sequence, and the sequence for a given key is stable across
// platforms and process runs.
//
// # Choosing Parameters
//
// Use [New] with your expected number of items and desired false positive
// rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := fnvbloom.New(1_000_000, 0.01)
//
// The bit array size and probe count are derived from the standard formula
//
//	bits ≈ -n * ln(p) / (ln(2))²
//	k    ≈ (bits/n) * ln(2)
//
// with both intermediate results truncated toward zero and the byte size
// rounded up to a whole byte. [Params] exposes the computed values, and
// [NewWithParams] accepts explicit ones for advanced use.
//
// # False Positive Rate
//
// When the filter holds the number of items it was sized for, it achieves
// approximately the target false positive rate. Adding more items than the
// capacity increases the rate. Use [Filter.EstimatedFalsePositiveRate] to
// monitor the current rate and [Filter.EstimatedFillRatio] to watch
// saturation.
//
// # Memory Usage
//
// Memory is allocated once, at construction:
//
//	memory_bytes = ceil(-n * ln(p) / (8 * ln(2)²))
//
// Example: 1 million items at 1% FP rate ≈ 1.2 MB. Add and Test never
// allocate.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Concurrent insertions race on the
// read-modify-write bit sets; guard the filter with external synchronization
// or restrict it to a single writer and no concurrent readers.
//
// # References
//
//   - Bloom filter: https://en.wikipedia.org/wiki/Bloom_filter
//   - FNV hash: http://www.isthe.com/chongo/tech/comp/fnv/
package fnvbloom

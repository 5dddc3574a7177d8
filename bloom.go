package fnvbloom

import "math/bits"

// Filter is a non-thread-safe bloom filter over a byte-addressed bit array.
//
// Probe positions come from a chain of 32-bit hashes: the first hash covers
// the key bytes, and every subsequent hash covers the little-endian encoding
// of its predecessor. Bit positions are numbered least-significant-bit first
// within each byte. Bits only ever transition from clear to set, so a key
// that has been added is always reported present.
type Filter struct {
	bits      []byte // Bit array, length fixed at construction
	hashCount int    // Number of chained hash probes per operation
	count     uint64 // Number of items added (approximate)
}

// New creates a filter sized for the expected number of items and desired
// false positive rate. It returns an error wrapping ErrInvalidItemCount or
// ErrInvalidFPRate when the parameters are out of range; no filter is
// allocated in that case.
func New(n int, p float64) (*Filter, error) {
	byteSize, hashCount, err := Params(n, p)
	if err != nil {
		return nil, err
	}
	return NewWithParams(byteSize, hashCount), nil
}

// NewWithParams creates a filter with an explicit bit array size in bytes
// and probe count. Both parameters are clamped to a minimum of 1.
func NewWithParams(byteSize, hashCount int) *Filter {
	return &Filter{
		bits:      make([]byte, max(byteSize, 1)),
		hashCount: max(hashCount, 1),
	}
}

// Add adds data to the filter. It never fails and only ever sets bits, so
// adding more keys can never make a present key test absent.
func (f *Filter) Add(data []byte) {
	f.addProbes(sum32(data))
}

// AddString adds a string to the filter without allocating.
func (f *Filter) AddString(s string) {
	f.addProbes(sum32String(s))
}

// addProbes sets one bit per hash in the chain starting at h.
func (f *Filter) addProbes(h uint32) {
	numBits := uint64(len(f.bits)) * 8

	for i := 0; i < f.hashCount; i++ {
		if i > 0 {
			h = nextHash(h)
		}
		pos := uint64(h) % numBits
		f.bits[pos/8] |= 1 << (pos % 8)
	}

	f.count++
}

// Test checks if data might be in the filter. It returns true if the data
// might be present (with false positive probability), or false if the data
// is definitely not present.
func (f *Filter) Test(data []byte) bool {
	return f.testProbes(sum32(data))
}

// TestString checks if a string might be in the filter without allocating.
func (f *Filter) TestString(s string) bool {
	return f.testProbes(sum32String(s))
}

// testProbes reports whether every probe bit in the chain starting at h is
// set, returning false on the first clear bit without computing the rest of
// the chain.
func (f *Filter) testProbes(h uint32) bool {
	numBits := uint64(len(f.bits)) * 8

	for i := 0; i < f.hashCount; i++ {
		if i > 0 {
			h = nextHash(h)
		}
		pos := uint64(h) % numBits
		if f.bits[pos/8]&(1<<(pos%8)) == 0 {
			return false
		}
	}

	return true
}

// TestAndAdd checks whether data was present and then adds it, sharing a
// single pass over the hash chain. The result reflects the filter state
// before the insertion.
func (f *Filter) TestAndAdd(data []byte) bool {
	h := sum32(data)
	numBits := uint64(len(f.bits)) * 8
	present := true

	for i := 0; i < f.hashCount; i++ {
		if i > 0 {
			h = nextHash(h)
		}
		pos := uint64(h) % numBits
		mask := byte(1) << (pos % 8)
		if f.bits[pos/8]&mask == 0 {
			present = false
		}
		f.bits[pos/8] |= mask
	}

	f.count++
	return present
}

// ByteSize returns the size of the bit array in bytes.
func (f *Filter) ByteSize() int {
	return len(f.bits)
}

// HashCount returns the number of hash probes applied per operation.
func (f *Filter) HashCount() int {
	return f.hashCount
}

// Cap returns the capacity of the filter in bits.
func (f *Filter) Cap() uint64 {
	return uint64(len(f.bits)) * 8
}

// Count returns the approximate number of items added to the filter.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio estimates the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	var setBits uint64
	for _, b := range f.bits {
		setBits += uint64(bits.OnesCount8(b))
	}
	return float64(setBits) / float64(f.Cap())
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(len(f.bits), f.hashCount, f.count)
}

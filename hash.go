package fnvbloom

import "encoding/binary"

// hashPrime is the multiplier of the 32-bit streaming hash. The value is the
// FNV-1 32-bit offset basis used as a multiplicative constant; changing it
// changes every probe sequence the filter produces.
const hashPrime = 0x811c9dc5

// sum32 computes the streaming multiply/XOR hash of data: starting from a
// zero accumulator, each byte multiplies the accumulator by hashPrime
// (wrapping 32-bit multiply) and is then XORed in.
func sum32(data []byte) uint32 {
	var h uint32
	for _, b := range data {
		h *= hashPrime
		h ^= uint32(b)
	}
	return h
}

// sum32String is sum32 over the bytes of s, avoiding a []byte conversion.
func sum32String(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h *= hashPrime
		h ^= uint32(s[i])
	}
	return h
}

// nextHash derives the next hash in the probe chain by hashing the 4-byte
// little-endian encoding of the previous hash value. The byte order is fixed
// so that a given key yields the same probe sequence on every platform.
func nextHash(h uint32) uint32 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], h)
	return sum32(buf[:])
}

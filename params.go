package fnvbloom

import (
	"errors"
	"fmt"
	"math"
)

// invSqLn2 is -1/ln(2)^2. The optimal bit count for a bloom filter is
// m = -n*ln(p)/ln(2)^2; the sign and the squared-log term are folded into
// this one constant so the sizing below is a single multiplication.
const invSqLn2 = -2.0813689810056077

var (
	// ErrInvalidItemCount is returned when the expected item count is not positive.
	ErrInvalidItemCount = errors.New("fnvbloom: expected item count must be positive")

	// ErrInvalidFPRate is returned when the target false positive rate is
	// outside the open interval (0, 1).
	ErrInvalidFPRate = errors.New("fnvbloom: false positive rate must be in (0, 1)")
)

// Params computes the bit array size in bytes and the number of hash probes
// for a filter expected to hold n items with false positive rate p.
//
// The ideal bit count n*ln(p)*invSqLn2 is truncated toward zero (not
// rounded) and then rounded up to a whole byte. The probe count is derived
// from the bit count before byte rounding, again truncating toward zero:
//
//	hashCount = trunc(bits * ln(2) / n)
//
// Degenerate inputs (n of 1, p close to 1) can drive either result to zero,
// so both are clamped to a floor of 1.
func Params(n int, p float64) (byteSize, hashCount int, err error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidItemCount, n)
	}
	if p <= 0.0 || p >= 1.0 {
		return 0, 0, fmt.Errorf("%w: got %v", ErrInvalidFPRate, p)
	}

	dbits := float64(n) * math.Log(p) * invSqLn2

	szBits := int(dbits) // conversion truncates toward zero
	byteSize = szBits / 8
	if szBits%8 != 0 {
		byteSize = szBits/8 + 1
	}

	hashCount = int(dbits * math.Ln2 / float64(n)) // truncates toward zero

	return max(byteSize, 1), max(hashCount, 1), nil
}

// EstimateFalsePositiveRate estimates the false positive probability of a
// filter of byteSize bytes and hashCount probes after itemsAdded insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(byteSize, hashCount int, itemsAdded uint64) float64 {
	m := float64(byteSize) * 8
	n := float64(itemsAdded)
	k := float64(hashCount)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-k*n/m), k)
}

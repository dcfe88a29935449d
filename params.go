package bloomset

import (
	"fmt"
	"math"
)

const (
	// MaxBitCount is the largest bit array a derived filter may request
	// (32 TiB of bits).
	MaxBitCount = uint64(1) << 48
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// OptimalParams calculates the bit array size and number of hash probes that
// minimize memory for the given capacity and target false positive rate.
//
//	bitCount  = ceil(-(n * ln(p)) / ln(2)^2), at least 1
//	hashCount = round((bitCount / n) * ln(2)), at least 1
//
// The result is a pure function of its inputs. Halfway cases in hashCount are
// rounded to even.
func OptimalParams(expectedItems uint64, fpRate float64) (bitCount uint64, hashCount uint32, err error) {
	if expectedItems == 0 {
		return 0, 0, fmt.Errorf("%w: expected items must be positive", ErrInvalidArgument)
	}
	// Written this way so that NaN is rejected too.
	if !(fpRate > 0 && fpRate < 1) {
		return 0, 0, fmt.Errorf("%w: false positive rate %v not in (0, 1)", ErrInvalidArgument, fpRate)
	}

	n := float64(expectedItems)
	bits := math.Ceil(-(n * math.Log(fpRate)) / ln2Squared)
	if bits > float64(MaxBitCount) {
		return 0, 0, fmt.Errorf("%w: %d items at rate %v needs more than %d bits",
			ErrInvalidArgument, expectedItems, fpRate, MaxBitCount)
	}
	bitCount = max(uint64(bits), 1)

	k := math.RoundToEven(float64(bitCount) / n * ln2)
	hashCount = uint32(max(k, 1))

	return bitCount, hashCount, nil
}

// EstimateFalsePositiveRate estimates the false positive rate for given parameters.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(bitCount uint64, hashCount uint32, itemsAdded uint64) float64 {
	m := float64(bitCount)
	n := float64(itemsAdded)
	k := float64(hashCount)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-k*n/m), k)
}

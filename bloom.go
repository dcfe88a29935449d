package bloomset

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Filter is a non-thread-safe bloom filter over a fixed-size bit array.
//
// Every item is hashed hashCount times, once per probe number, and each
// probe sets or tests one bit anywhere in the array. Bits are only ever set,
// never cleared, so an item that has been added always tests present.
type Filter struct {
	bits   *bitset.BitSet
	m      uint64 // Number of bits
	k      uint32 // Number of probes per item
	hasher Hasher
	count  uint64 // Number of adds that set at least one new bit
}

// New creates a new bloom filter sized for the expected number of items and
// desired false positive rate. See [OptimalParams] for the derivation.
//
// It returns an error wrapping [ErrInvalidArgument] if expectedItems is zero
// or fpRate is not strictly between 0 and 1.
func New(expectedItems uint64, fpRate float64, opts ...Option) (*Filter, error) {
	bitCount, hashCount, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewWithParams(bitCount, hashCount, opts...)
}

// NewWithParams creates a new bloom filter with explicit parameters.
// bitCount is the size of the bit array, hashCount the number of probes.
//
// It returns an error wrapping [ErrInvalidArgument] if either is zero or
// bitCount exceeds [MaxBitCount].
func NewWithParams(bitCount uint64, hashCount uint32, opts ...Option) (*Filter, error) {
	if err := validateParams(bitCount, hashCount); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	return &Filter{
		bits:   bitset.New(uint(bitCount)),
		m:      bitCount,
		k:      hashCount,
		hasher: o.hasher,
	}, nil
}

// Indices returns the bit positions probed for data, in probe order.
// The sequence has exactly K() elements, each in [0, Cap()), and may be
// iterated any number of times.
func (f *Filter) Indices(data []byte) iter.Seq[uint64] {
	return indices(f.hasher, data, f.m, f.k)
}

// IndicesString is like Indices but for string items.
func (f *Filter) IndicesString(s string) iter.Seq[uint64] {
	return indices(f.hasher, stringBytes(s), f.m, f.k)
}

func indices(h Hasher, data []byte, m uint64, k uint32) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := uint32(0); i < k; i++ {
			if !yield(h.Index(data, i, m)) {
				return
			}
		}
	}
}

// Add adds data to the bloom filter. Adding the same data again has no effect.
func (f *Filter) Add(data []byte) {
	f.testAndAdd(data)
}

// AddString adds a string to the bloom filter without allocating a copy.
func (f *Filter) AddString(s string) {
	f.testAndAdd(stringBytes(s))
}

// Test checks if data might be in the bloom filter.
// Returns true if the data might be present (with false positive probability),
// or false if the data is definitely not present.
func (f *Filter) Test(data []byte) bool {
	for i := uint32(0); i < f.k; i++ {
		if !f.bits.Test(uint(f.hasher.Index(data, i, f.m))) {
			return false
		}
	}
	return true
}

// TestString checks if a string might be in the bloom filter.
func (f *Filter) TestString(s string) bool {
	return f.Test(stringBytes(s))
}

// TestAndAdd reports whether data might have been present, then adds it.
func (f *Filter) TestAndAdd(data []byte) bool {
	return f.testAndAdd(data)
}

// TestAndAddString is like TestAndAdd but for string items.
func (f *Filter) TestAndAddString(s string) bool {
	return f.testAndAdd(stringBytes(s))
}

func (f *Filter) testAndAdd(data []byte) bool {
	present := true
	for i := uint32(0); i < f.k; i++ {
		idx := uint(f.hasher.Index(data, i, f.m))
		if !f.bits.Test(idx) {
			f.bits.Set(idx)
			present = false
		}
	}

	// Only count adds that changed state so that repeated adds are invisible.
	if !present {
		f.count++
	}
	return present
}

// Cap returns the capacity of the filter in bits.
func (f *Filter) Cap() uint64 {
	return f.m
}

// K returns the number of hash probes per item.
func (f *Filter) K() uint32 {
	return f.k
}

// Count returns the approximate number of distinct items added to the filter.
// Items whose bits were all set already (duplicates and false positives) are
// not counted.
func (f *Filter) Count() uint64 {
	return f.count
}

// Hasher returns the hasher used to derive bit positions.
func (f *Filter) Hasher() Hasher {
	return f.hasher
}

// EstimatedFillRatio estimates the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}

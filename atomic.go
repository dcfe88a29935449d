package bloomset

import (
	"iter"
	"math/bits"
	"sync/atomic"
)

// AtomicFilter is a thread-safe bloom filter using atomic operations.
// It probes exactly the same bit positions as a [Filter] with the same
// parameters and hasher, but stores bits in atomic.Uint64 words so that Add
// and Test may be called concurrently.
type AtomicFilter struct {
	words  []atomic.Uint64 // ceil(m/64) words, bit i lives in words[i/64]
	m      uint64
	k      uint32
	hasher Hasher
	count  atomic.Uint64
}

// NewAtomic creates a new thread-safe bloom filter sized for the expected
// number of items and desired false positive rate.
func NewAtomic(expectedItems uint64, fpRate float64, opts ...Option) (*AtomicFilter, error) {
	bitCount, hashCount, err := OptimalParams(expectedItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewAtomicWithParams(bitCount, hashCount, opts...)
}

// NewAtomicWithParams creates a new thread-safe bloom filter with explicit parameters.
func NewAtomicWithParams(bitCount uint64, hashCount uint32, opts ...Option) (*AtomicFilter, error) {
	if err := validateParams(bitCount, hashCount); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	return &AtomicFilter{
		words:  make([]atomic.Uint64, (bitCount+63)/64),
		m:      bitCount,
		k:      hashCount,
		hasher: o.hasher,
	}, nil
}

// Indices returns the bit positions probed for data, in probe order.
func (f *AtomicFilter) Indices(data []byte) iter.Seq[uint64] {
	return indices(f.hasher, data, f.m, f.k)
}

// IndicesString is like Indices but for string items.
func (f *AtomicFilter) IndicesString(s string) iter.Seq[uint64] {
	return indices(f.hasher, stringBytes(s), f.m, f.k)
}

// Add adds data to the bloom filter atomically.
func (f *AtomicFilter) Add(data []byte) {
	f.testAndAdd(data)
}

// AddString adds a string to the bloom filter atomically without allocating.
func (f *AtomicFilter) AddString(s string) {
	f.testAndAdd(stringBytes(s))
}

// Test checks if data might be in the bloom filter.
// This operation is safe to call concurrently with Add.
func (f *AtomicFilter) Test(data []byte) bool {
	for i := uint32(0); i < f.k; i++ {
		idx := f.hasher.Index(data, i, f.m)
		if f.words[idx/64].Load()&(1<<(idx%64)) == 0 {
			return false
		}
	}
	return true
}

// TestString checks if a string might be in the bloom filter.
func (f *AtomicFilter) TestString(s string) bool {
	return f.Test(stringBytes(s))
}

// TestAndAdd reports whether data might have been present, then adds it.
// Each bit is set atomically, but the operation as a whole is not: two
// goroutines adding the same new item may both observe it as absent.
func (f *AtomicFilter) TestAndAdd(data []byte) bool {
	return f.testAndAdd(data)
}

// TestAndAddString is like TestAndAdd but for string items.
func (f *AtomicFilter) TestAndAddString(s string) bool {
	return f.testAndAdd(stringBytes(s))
}

func (f *AtomicFilter) testAndAdd(data []byte) bool {
	present := true
	for i := uint32(0); i < f.k; i++ {
		idx := f.hasher.Index(data, i, f.m)
		mask := uint64(1) << (idx % 64)
		if f.words[idx/64].Or(mask)&mask == 0 {
			present = false
		}
	}

	if !present {
		f.count.Add(1)
	}
	return present
}

// Cap returns the capacity of the filter in bits.
func (f *AtomicFilter) Cap() uint64 {
	return f.m
}

// K returns the number of hash probes per item.
func (f *AtomicFilter) K() uint32 {
	return f.k
}

// Count returns the approximate number of distinct items added to the filter.
func (f *AtomicFilter) Count() uint64 {
	return f.count.Load()
}

// Hasher returns the hasher used to derive bit positions.
func (f *AtomicFilter) Hasher() Hasher {
	return f.hasher
}

// EstimatedFillRatio estimates the proportion of bits that are set.
func (f *AtomicFilter) EstimatedFillRatio() float64 {
	var setBits uint64
	for i := range f.words {
		setBits += uint64(bits.OnesCount64(f.words[i].Load()))
	}
	return float64(setBits) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate.
func (f *AtomicFilter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count.Load())
}

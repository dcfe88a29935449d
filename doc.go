// Package bloomset provides a classic bloom filter with independently salted
// hash probes.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Index Derivation
//
// Each item is hashed k times. Probe i hashes the item bytes together with the
// probe number i as a salt and reduces the result modulo the bit array size,
// so the k bit positions behave like k independent hash functions spread over
// the whole array.
//
// The default [SHA256] hasher appends the decimal probe number to the item and
// reads the full 256-bit digest as a big-endian integer:
//
//	index(item, i) = int(SHA-256(item || "i")) mod m
//
// This scheme is pinned, so any implementation using it produces the same
// index sequence for the same (m, k, item). Faster non-cryptographic hashers
// ([XXH3], [Murmur3], [XXHash]) can be selected with [WithHasher]; they keep
// the false positive behavior but not the cross-implementation index
// compatibility.
//
// # Choosing Parameters
//
// Use [New] with your expected number of items and desired false positive
// rate:
//
//	// Filter for 1000 items with 1% false positive rate (9586 bits, k=7)
//	f, err := bloomset.New(1000, 0.01)
//
// The derivation is:
//
//	m = ceil(-n * ln(p) / (ln(2))²)
//	k = round((m / n) * ln(2))
//
// [NewWithParams] takes m and k directly. Both constructors return an error
// wrapping [ErrInvalidArgument] for out-of-range parameters; once constructed,
// Add and Test never fail.
//
// # False Positive Rate
//
// When the filter is filled to its intended capacity, it will achieve
// approximately the target false positive rate. Adding more items than
// the capacity increases the false positive rate. Use [Filter.EstimatedFalsePositiveRate]
// to monitor the current rate.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Use external synchronization or choose
// [AtomicFilter] for concurrent access.
//
// [AtomicFilter] is safe for concurrent Add and Test operations. Its
// [AtomicFilter.TestAndAdd] method is NOT a single atomic operation – there
// is a race window between the test and add.
//
// # Limitations
//
// Items cannot be removed and the bit array cannot grow after construction.
package bloomset

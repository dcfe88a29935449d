package bloomset

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher derives the bit index for one probe of an item.
//
// Implementations must be deterministic for a given (data, probe, bitCount),
// must return a value in [0, bitCount), and must not retain or modify data.
// Distinct probes must behave as independent hash functions.
type Hasher interface {
	// Index returns the bit position for the given probe number.
	Index(data []byte, probe uint32, bitCount uint64) uint64

	// Name returns a short identifier such as "sha256".
	Name() string
}

var (
	// SHA256 hashes the item bytes followed by the decimal probe number and
	// reduces the full 256-bit big-endian digest modulo the bit count. It is
	// the default hasher and is pinned so that index sequences are identical
	// across implementations using the same scheme.
	SHA256 Hasher = sha256Hasher{}

	// XXH3 uses the 64-bit xxh3 hash seeded with the probe number.
	XXH3 Hasher = xxh3Hasher{}

	// Murmur3 uses the 64-bit murmur3 hash seeded with the probe number.
	Murmur3 Hasher = murmur3Hasher{}

	// XXHash uses the 64-bit xxhash digest seeded with the probe number.
	XXHash Hasher = xxhashHasher{}
)

var hashers = map[string]Hasher{
	SHA256.Name():  SHA256,
	XXH3.Name():    XXH3,
	Murmur3.Name(): Murmur3,
	XXHash.Name():  XXHash,
}

// HasherByName returns the built-in hasher with the given name.
func HasherByName(name string) (Hasher, error) {
	h, ok := hashers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown hasher %q", ErrInvalidArgument, name)
	}
	return h, nil
}

type sha256Hasher struct{}

func (sha256Hasher) Name() string { return "sha256" }

func (sha256Hasher) Index(data []byte, probe uint32, bitCount uint64) uint64 {
	var salt [10]byte
	var sum [sha256.Size]byte

	h := sha256.New()
	h.Write(data)
	h.Write(strconv.AppendUint(salt[:0], uint64(probe), 10))
	return reduceBigEndian(h.Sum(sum[:0]), bitCount)
}

// reduceBigEndian returns the big-endian integer in b modulo m.
// len(b) must be a multiple of 8.
func reduceBigEndian(b []byte, m uint64) uint64 {
	var r uint64
	for i := 0; i < len(b); i += 8 {
		// r < m always holds, so Div64 cannot overflow.
		_, r = bits.Div64(r, readU64BE(b[i:i+8]), m)
	}
	return r
}

func readU64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

type xxh3Hasher struct{}

func (xxh3Hasher) Name() string { return "xxh3" }

func (xxh3Hasher) Index(data []byte, probe uint32, bitCount uint64) uint64 {
	return xxh3.HashSeed(data, uint64(probe)) % bitCount
}

type murmur3Hasher struct{}

func (murmur3Hasher) Name() string { return "murmur3" }

func (murmur3Hasher) Index(data []byte, probe uint32, bitCount uint64) uint64 {
	return murmur3.Sum64WithSeed(data, probe) % bitCount
}

type xxhashHasher struct{}

func (xxhashHasher) Name() string { return "xxhash" }

func (xxhashHasher) Index(data []byte, probe uint32, bitCount uint64) uint64 {
	d := xxhash.NewWithSeed(uint64(probe))
	_, _ = d.Write(data)
	return d.Sum64() % bitCount
}

// stringBytes returns the bytes of s without copying. Hashers never modify
// their input, so this is safe for the read-only paths that use it.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

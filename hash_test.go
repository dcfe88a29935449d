package bloomset

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors generated by the reference implementation of the salted SHA-256
// scheme: int(sha256(item + str(i)).hexdigest(), 16) % m.
func TestSHA256CrossImplementationVectors(t *testing.T) {
	tests := []struct {
		item string
		m    uint64
		k    uint32
		want []uint64
	}{
		{"alice@example.com", 1000, 3, []uint64{14, 241, 41}},
		{"", 1000, 3, []uint64{305, 315, 861}},
		{"alice@example.com", 9586, 7, []uint64{5032, 1813, 4697, 3790, 9332, 810, 8063}},
		{"hello", 64, 4, []uint64{12, 43, 36, 16}},
		{"héllo wörld", 1 << 40, 5, []uint64{1054665777018, 433258957024, 387340106365, 1019426247718, 549394653340}},
		{"x", 1, 3, []uint64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/m=%d", tt.item, tt.m), func(t *testing.T) {
			got := slices.Collect(indices(SHA256, []byte(tt.item), tt.m, tt.k))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReduceBigEndianMatchesBigInt(t *testing.T) {
	moduli := []uint64{1, 2, 3, 1000, 9586, 1<<32 + 15, 1 << 48, 1<<63 + 7, ^uint64(0)}

	for i := range 50 {
		sum := sha256.Sum256(fmt.Appendf(nil, "value-%d", i))
		n := new(big.Int).SetBytes(sum[:])
		for _, m := range moduli {
			want := new(big.Int).Mod(n, new(big.Int).SetUint64(m)).Uint64()
			require.Equal(t, want, reduceBigEndian(sum[:], m), "m=%d", m)
		}
	}
}

func TestHashersInRange(t *testing.T) {
	for _, h := range allHashers {
		t.Run(h.Name(), func(t *testing.T) {
			for _, m := range []uint64{1, 7, 64, 1000, 1 << 40} {
				for i := range 100 {
					data := fmt.Appendf(nil, "item-%d", i)
					for probe := range uint32(8) {
						idx := h.Index(data, probe, m)
						require.Less(t, idx, m)
						require.Equal(t, idx, h.Index(data, probe, m), "not deterministic")
					}
				}
			}
		})
	}
}

func TestHashersProbesIndependent(t *testing.T) {
	const m = 1 << 40

	for _, h := range allHashers {
		t.Run(h.Name(), func(t *testing.T) {
			data := []byte("alice@example.com")
			seen := make(map[uint64]bool)
			for probe := range uint32(16) {
				seen[h.Index(data, probe, m)] = true
			}
			// Distinct salts over a 2^40 space should never collide here.
			assert.Len(t, seen, 16)
		})
	}
}

func TestHashersUniform(t *testing.T) {
	const (
		m       = 16
		samples = 32000
	)

	for _, h := range allHashers {
		t.Run(h.Name(), func(t *testing.T) {
			var buckets [m]int
			for i := range samples {
				buckets[h.Index(fmt.Appendf(nil, "key-%d", i), uint32(i%4), m)]++
			}
			// Expected 2000 per bucket; 10 sigma is about 430.
			for b, n := range buckets {
				assert.InDelta(t, samples/m, n, 430, "bucket %d", b)
			}
		})
	}
}

func TestHasherByName(t *testing.T) {
	for _, h := range allHashers {
		got, err := HasherByName(h.Name())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	_, err := HasherByName("md5")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

package hash

import (
	crand "crypto/rand"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"pgregory.net/rapid"
)

// TestLsh512Chunking tests that any split of the input stream into Write
// calls produces the digest of the whole message, for all three variants of
// the 64-bit family.
func TestLsh512Chunking(t *testing.T) {
	newHashers := []func() Hasher{NewLSH384, NewLSH512, NewLSH512_256}
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.SliceOfN(rapid.Byte(), 0, 3*BlockLenLsh512).Draw(t, "msg")
		for _, newHasher := range newHashers {
			expected := newHasher().ComputeHash(msg)

			h := newHasher()
			rest := msg
			for len(rest) > 0 {
				n := rapid.IntRange(1, len(rest)).Draw(t, "chunk")
				_, err := h.Write(rest[:n])
				require.NoError(t, err)
				rest = rest[n:]
			}
			require.Equal(t, expected, h.SumHash())
		}
	})
}

// TestLsh512Reset tests that Reset discards all absorbed data.
func TestLsh512Reset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stale := rapid.SliceOfN(rapid.Byte(), 0, 2*BlockLenLsh512).Draw(t, "stale")
		msg := rapid.SliceOfN(rapid.Byte(), 0, 2*BlockLenLsh512).Draw(t, "msg")

		h := NewLSH512_256()
		_, err := h.Write(stale)
		require.NoError(t, err)
		h.Reset()
		_, err = h.Write(msg)
		require.NoError(t, err)
		require.Equal(t, NewLSH512_256().ComputeHash(msg), h.SumHash())
	})
}

// TestLsh512InterleavedStreams tests that hasher instances carry no shared
// state.
func TestLsh512InterleavedStreams(t *testing.T) {
	msgA := sequential(511)
	msgB := []byte("a second independent stream")

	ha := NewLSH512()
	hb := NewLSH512()
	_, err := ha.Write(msgA[:100])
	require.NoError(t, err)
	_, err = hb.Write(msgB[:10])
	require.NoError(t, err)
	_, err = ha.Write(msgA[100:])
	require.NoError(t, err)
	_, err = hb.Write(msgB[10:])
	require.NoError(t, err)

	assert.Equal(t, NewLSH512().ComputeHash(msgA), ha.SumHash())
	assert.Equal(t, NewLSH512().ComputeHash(msgB), hb.SumHash())
}

// TestLsh512Avalanche samples the diffusion of single-bit input flips, see
// TestLsh256Avalanche.
func TestLsh512Avalanche(t *testing.T) {
	trials := 256
	msg := make([]byte, 400)
	_, err := crand.Read(msg)
	require.NoError(t, err)

	h := NewLSH512()
	digestBits := float64(8 * HashLenLsh512)
	distances := make([]float64, trials)
	for i := 0; i < trials; i++ {
		base := h.ComputeHash(msg)
		bit := rand.Intn(8 * len(msg))
		msg[bit/8] ^= 1 << (bit % 8)
		flipped := h.ComputeHash(msg)
		diff := 0
		for j := range base {
			diff += bits.OnesCount8(base[j] ^ flipped[j])
		}
		distances[i] = float64(diff) / digestBits
	}
	mean := stat.Mean(distances, nil)
	stdev := stat.StdDev(distances, nil)
	assert.InDelta(t, 0.5, mean, 0.05, "poor diffusion, mean %v stdev %v", mean, stdev)
	assert.Less(t, stdev, 0.1, "poor diffusion, mean %v stdev %v", mean, stdev)
}

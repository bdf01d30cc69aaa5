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

// TestLsh256Chunking tests that any split of the input stream into Write
// calls produces the digest of the whole message.
func TestLsh256Chunking(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.SliceOfN(rapid.Byte(), 0, 5*BlockLenLsh256).Draw(t, "msg")
		expected := NewLSH256().ComputeHash(msg)

		h := NewLSH256()
		rest := msg
		for len(rest) > 0 {
			n := rapid.IntRange(1, len(rest)).Draw(t, "chunk")
			_, err := h.Write(rest[:n])
			require.NoError(t, err)
			rest = rest[n:]
		}
		require.Equal(t, expected, h.SumHash())
	})
}

// TestLsh224Reset tests that Reset discards all absorbed data.
func TestLsh224Reset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stale := rapid.SliceOfN(rapid.Byte(), 0, 2*BlockLenLsh256).Draw(t, "stale")
		msg := rapid.SliceOfN(rapid.Byte(), 0, 2*BlockLenLsh256).Draw(t, "msg")

		h := NewLSH224()
		_, err := h.Write(stale)
		require.NoError(t, err)
		h.Reset()
		_, err = h.Write(msg)
		require.NoError(t, err)
		require.Equal(t, NewLSH224().ComputeHash(msg), h.SumHash())
	})
}

// TestLsh256Avalanche samples the diffusion of single-bit input flips. This
// is a sanity check of the mixing layers, not a statistical evaluation: a
// flip is expected to change close to half of the digest bits.
func TestLsh256Avalanche(t *testing.T) {
	trials := 256
	msg := make([]byte, 200)
	_, err := crand.Read(msg)
	require.NoError(t, err)

	h := NewLSH256()
	digestBits := float64(8 * HashLenLsh256)
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

// Package hash provides the LSH family of cryptographic hash functions
// (LSH-224, LSH-256, LSH-384, LSH-512 and LSH-512-256) as specified in the
// Korean national standard KS X 3262.
package hash

//revive:disable:var-naming

import (
	"bytes"
	"encoding/hex"
	"io"
	"strings"
)

// HashingAlgorithm is an identifier for a hashing algorithm.
type HashingAlgorithm int

const (
	// Supported hashing algorithms
	UnknownHashingAlgorithm HashingAlgorithm = iota
	LSH_224
	LSH_256
	LSH_384
	LSH_512
	LSH_512_256
)

var algoNames = [...]string{"UNKNOWN", "LSH-224", "LSH-256", "LSH-384", "LSH-512", "LSH-512-256"}

// String returns the standard name of this hashing algorithm.
func (f HashingAlgorithm) String() string {
	if f < 0 || int(f) >= len(algoNames) {
		return algoNames[UnknownHashingAlgorithm]
	}
	return algoNames[f]
}

// ParseHashingAlgorithm returns the hashing algorithm with the given
// standard name, for instance "LSH-512-256". Parsing is case-insensitive.
func ParseHashingAlgorithm(name string) (HashingAlgorithm, error) {
	for i := int(UnknownHashingAlgorithm) + 1; i < len(algoNames); i++ {
		if strings.EqualFold(name, algoNames[i]) {
			return HashingAlgorithm(i), nil
		}
	}
	return UnknownHashingAlgorithm, configurationErrorf("%q is not a supported hashing algorithm", name)
}

const (
	// Lengths of hash outputs in bytes
	HashLenLsh224     = 28
	HashLenLsh256     = 32
	HashLenLsh384     = 48
	HashLenLsh512     = 64
	HashLenLsh512_256 = 32

	// BlockLenLsh256 is the message block length, in bytes, of the 32-bit
	// word family (LSH-224 and LSH-256).
	BlockLenLsh256 = 128

	// BlockLenLsh512 is the message block length, in bytes, of the 64-bit
	// word family (LSH-384, LSH-512 and LSH-512-256).
	BlockLenLsh512 = 256
)

// Hash is the hash algorithms output types
type Hash []byte

// Equal checks if a hash is equal to a given hash
func (h Hash) Equal(input Hash) bool {
	return bytes.Equal(h, input)
}

// Hex returns the hex string representation of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h)
}

// String returns the hex string representation of the hash.
func (h Hash) String() string {
	return h.Hex()
}

// Hasher is an interface for all hash-related APIs exposed by this package.
//
// A Hasher instance is a stateful hash computation owned by a single caller:
// none of the methods below are safe for concurrent use on the same instance,
// while distinct instances are fully independent.
type Hasher interface {
	// Algorithm returns the hashing algorithm of the hasher.
	Algorithm() HashingAlgorithm
	// Size returns the hash output length in bytes.
	Size() int
	// BlockSize returns the hash block length in bytes.
	BlockSize() int
	// ComputeHash returns the hash output of the input byte array.
	// It resets the hash state before writing, so any data previously
	// absorbed through Write is discarded.
	ComputeHash([]byte) Hash
	// Write absorbs more data into the hash state. It returns a misuse
	// error when called after the stream has been finalized through
	// SumHash or TruncatedSumHash without an intervening Reset.
	io.Writer
	// SumHash finalizes the stream and returns the hash output.
	// Finalization is one-shot: after SumHash returns, the hasher must be
	// Reset before absorbing more data. Calling SumHash again without a
	// Reset panics.
	SumHash() Hash
	// Reset resets the hash state.
	Reset()
}

// TruncatedHasher is a Hasher whose final output can be truncated
// to a prefix of the full digest at finalization time.
//
// All LSH hashers implement TruncatedHasher.
type TruncatedHasher interface {
	Hasher
	// TruncatedSumHash finalizes the stream like SumHash and returns the
	// first size bytes of the digest. It returns a configuration error if
	// size is negative or larger than Size(), and a misuse error if the
	// stream was already finalized.
	TruncatedSumHash(size int) (Hash, error)
}

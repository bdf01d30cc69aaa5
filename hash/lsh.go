package hash

// NewHasher initializes and returns a new hasher of the given LSH variant.
//
// The variant fixes the digest length and the internal word width: LSH-224
// and LSH-256 run the 32-bit engine, LSH-384, LSH-512 and LSH-512-256 the
// 64-bit one. An unsupported algorithm yields a configuration error.
func NewHasher(algo HashingAlgorithm) (Hasher, error) {
	switch algo {
	case LSH_224:
		return NewLSH224(), nil
	case LSH_256:
		return NewLSH256(), nil
	case LSH_384:
		return NewLSH384(), nil
	case LSH_512:
		return NewLSH512(), nil
	case LSH_512_256:
		return NewLSH512_256(), nil
	default:
		return nil, configurationErrorf("hashing algorithm %s is not an LSH variant", algo)
	}
}

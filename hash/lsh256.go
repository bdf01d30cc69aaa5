package hash

import (
	"encoding/binary"
	"math/bits"
)

// LSH-256 family (LSH-224 and LSH-256): 32-bit words, 128-byte message
// blocks, 26 mixing steps per block.

const (
	numSteps256 = 26

	// rotation amounts of the even and odd mixing steps
	alphaEven256 = 29
	betaEven256  = 1
	alphaOdd256  = 5
	betaOdd256   = 17
)

// gamma256 holds the per-column rotation amounts of the last mixing layer.
var gamma256 = [8]int{0, 8, 16, 24, 24, 16, 8, 0}

// iv224 and iv256 are the LSH-224 and LSH-256 initialization vectors from the
// standard. The first eight words seed the left chaining half, the last eight
// the right half.
var iv224 = [16]uint32{
	0x068608d3, 0x62d8f7a7, 0xd76652ab, 0x4c600a43,
	0xbdc40aa8, 0x1eca0b68, 0xda1a89be, 0x3147d354,
	0x707eb4f9, 0xf65b3862, 0x6b0b2abe, 0x56b8ec0a,
	0xcf237286, 0xee0d1727, 0x33636595, 0x8bb8d05f,
}

var iv256 = [16]uint32{
	0x46a10f1f, 0xfddce486, 0xb41443a8, 0x198e6b9d,
	0x3304388d, 0xb0f5a3c7, 0xb36061c4, 0x7adbd553,
	0x105d5378, 0x2f74de54, 0x5c2f2d95, 0xf2553fbe,
	0x8051357a, 0x138668c8, 0x47aa4484, 0xe01afb41,
}

// stepConstants256 holds the 26 8-word step constants of the 32-bit family.
// The standard defines them by SC[j+1][l] = SC[j][l] + (SC[j][l] <<< 8)
// starting from the fixed seed SC[0]; the table is filled once at init.
var stepConstants256 [numSteps256 * 8]uint32

func init() {
	sc := [8]uint32{
		0x917caf90, 0x6c1b10a2, 0x6f352943, 0xcf778243,
		0x2ceb7472, 0x29e96ff2, 0x8a9ba428, 0x2eeb2642,
	}
	for j := 0; j < numSteps256; j++ {
		copy(stepConstants256[8*j:8*j+8], sc[:])
		for l, c := range sc {
			sc[l] = c + bits.RotateLeft32(c, 8)
		}
	}
}

// digest256 is the streaming state of an LSH-224 or LSH-256 computation.
//
// The chaining value is a double pipe of two 8-word halves, mixed by every
// compressed block and folded into one half at finalization. The submessage
// arrays hold the expanded message schedule of the block currently being
// compressed; they carry nothing across blocks.
type digest256 struct {
	cvL [8]uint32
	cvR [8]uint32

	msgEvenL [8]uint32
	msgEvenR [8]uint32
	msgOddL  [8]uint32
	msgOddR  [8]uint32

	x  [BlockLenLsh256]byte // pending partial block
	nx int                  // number of valid bytes in x

	outLen    int
	algo      HashingAlgorithm
	finalized bool
}

// NewLSH224 returns a new instance of LSH-224 hasher
func NewLSH224() Hasher {
	d := &digest256{algo: LSH_224, outLen: HashLenLsh224}
	d.Reset()
	return d
}

// NewLSH256 returns a new instance of LSH-256 hasher
func NewLSH256() Hasher {
	d := &digest256{algo: LSH_256, outLen: HashLenLsh256}
	d.Reset()
	return d
}

// Algorithm returns the hashing algorithm of the hasher.
func (d *digest256) Algorithm() HashingAlgorithm {
	return d.algo
}

// Size returns the hash output length in bytes.
func (d *digest256) Size() int {
	return d.outLen
}

// BlockSize returns the hash block length in bytes.
func (d *digest256) BlockSize() int {
	return BlockLenLsh256
}

// Reset loads the initialization vector of the variant and clears the
// pending block, making the hasher ready for a fresh stream.
func (d *digest256) Reset() {
	iv := &iv256
	if d.algo == LSH_224 {
		iv = &iv224
	}
	copy(d.cvL[:], iv[:8])
	copy(d.cvR[:], iv[8:])
	d.nx = 0
	d.finalized = false
}

// Write absorbs p into the hash state. Any chunking of the input stream
// produces the same final digest. It returns a misuse error when called
// after finalization without an intervening Reset.
func (d *digest256) Write(p []byte) (int, error) {
	if d.finalized {
		return 0, misuseErrorf("hasher is already finalized, Reset it before absorbing more data")
	}
	n := len(p)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockLenLsh256 {
			d.compress(d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	for len(p) >= BlockLenLsh256 {
		d.compress(p[:BlockLenLsh256])
		p = p[BlockLenLsh256:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// SumHash finalizes the stream and returns the digest of the variant.
// Finalization consumes the state: the hasher rejects further writes until
// Reset, and calling SumHash a second time panics.
func (d *digest256) SumHash() Hash {
	if d.finalized {
		panic("lsh: SumHash on a finalized hasher, Reset it before reuse")
	}
	d.finalize()
	return d.sum(d.outLen)
}

// TruncatedSumHash finalizes the stream like SumHash and returns the first
// size bytes of the digest.
func (d *digest256) TruncatedSumHash(size int) (Hash, error) {
	if size < 0 || size > d.outLen {
		return nil, configurationErrorf("truncated output length %d is outside [0, %d]", size, d.outLen)
	}
	if d.finalized {
		return nil, misuseErrorf("hasher is already finalized, Reset it before reuse")
	}
	d.finalize()
	return d.sum(size), nil
}

// ComputeHash calculates and returns the digest of the input byte array.
// It resets the state before writing, so data previously absorbed through
// Write is discarded.
func (d *digest256) ComputeHash(data []byte) Hash {
	d.Reset()
	_, _ = d.Write(data)
	return d.SumHash()
}

// finalize pads the trailing partial block with the one-zeros rule, runs the
// last compression and folds the two chaining halves together. The standard
// embeds no message length in the padding.
func (d *digest256) finalize() {
	d.x[d.nx] = 0x80
	for i := d.nx + 1; i < BlockLenLsh256; i++ {
		d.x[i] = 0
	}
	d.compress(d.x[:])
	for i := range d.cvL {
		d.cvL[i] ^= d.cvR[i]
	}
	d.finalized = true
}

// sum serializes the folded chaining value little-endian and returns its
// first size bytes.
func (d *digest256) sum(size int) Hash {
	var out [HashLenLsh256]byte
	for i, v := range d.cvL {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out[:size]
}

// compress absorbs one full message block into the chaining value.
func (d *digest256) compress(block []byte) {
	d.loadBlock(block)

	d.addEven()
	d.mix(0, alphaEven256, betaEven256)
	d.wordPerm()

	d.addOdd()
	d.mix(1, alphaOdd256, betaOdd256)
	d.wordPerm()

	for i := 1; i < numSteps256/2; i++ {
		d.expandEven()
		d.addEven()
		d.mix(2*i, alphaEven256, betaEven256)
		d.wordPerm()

		d.expandOdd()
		d.addOdd()
		d.mix(2*i+1, alphaOdd256, betaOdd256)
		d.wordPerm()
	}

	// final message addition with one more expanded submessage
	d.expandEven()
	d.addEven()
}

// loadBlock splits a 128-byte block into the four little-endian submessage
// groups: even-left, even-right, odd-left, odd-right.
func (d *digest256) loadBlock(block []byte) {
	for i := 0; i < 8; i++ {
		d.msgEvenL[i] = binary.LittleEndian.Uint32(block[4*i:])
		d.msgEvenR[i] = binary.LittleEndian.Uint32(block[4*(i+8):])
		d.msgOddL[i] = binary.LittleEndian.Uint32(block[4*(i+16):])
		d.msgOddR[i] = binary.LittleEndian.Uint32(block[4*(i+24):])
	}
}

// expandEven derives the next even submessage in place from the current odd
// one: M[j][l] = M[j-1][l] + M[j-2][tau(l)].
func (d *digest256) expandEven() {
	expandHalf256(&d.msgEvenL, &d.msgOddL)
	expandHalf256(&d.msgEvenR, &d.msgOddR)
}

// expandOdd derives the next odd submessage in place from the current even one.
func (d *digest256) expandOdd() {
	expandHalf256(&d.msgOddL, &d.msgEvenL)
	expandHalf256(&d.msgOddR, &d.msgEvenR)
}

// expandHalf256 rewrites cur with prev[l] + cur[tau(l)] for one 8-word half,
// tau = (3,2,0,1,7,4,5,6).
func expandHalf256(cur, prev *[8]uint32) {
	t := cur[0]
	cur[0] = prev[0] + cur[3]
	cur[3] = prev[3] + cur[1]
	cur[1] = prev[1] + cur[2]
	cur[2] = prev[2] + t
	t = cur[4]
	cur[4] = prev[4] + cur[7]
	cur[7] = prev[7] + cur[6]
	cur[6] = prev[6] + cur[5]
	cur[5] = prev[5] + t
}

// addEven XORs the even submessage into the chaining halves.
func (d *digest256) addEven() {
	for i := 0; i < 8; i++ {
		d.cvL[i] ^= d.msgEvenL[i]
		d.cvR[i] ^= d.msgEvenR[i]
	}
}

// addOdd XORs the odd submessage into the chaining halves.
func (d *digest256) addOdd() {
	for i := 0; i < 8; i++ {
		d.cvL[i] ^= d.msgOddL[i]
		d.cvR[i] ^= d.msgOddR[i]
	}
}

// mix runs the mixing layer of one step over the eight word columns: two
// chained modular additions with the alpha and beta rotations and the step
// constant, then the per-column gamma rotation of the right half.
func (d *digest256) mix(step, alpha, beta int) {
	sc := stepConstants256[8*step : 8*step+8]
	for i := 0; i < 8; i++ {
		d.cvL[i] += d.cvR[i]
		d.cvL[i] = bits.RotateLeft32(d.cvL[i], alpha) ^ sc[i]
		d.cvR[i] += d.cvL[i]
		d.cvR[i] = bits.RotateLeft32(d.cvR[i], beta)
		d.cvL[i] += d.cvR[i]
		d.cvR[i] = bits.RotateLeft32(d.cvR[i], gamma256[i])
	}
}

// wordPerm applies the fixed word permutation that shuffles columns across
// the two chaining halves after each mixing layer.
func (d *digest256) wordPerm() {
	t := d.cvL[0]
	d.cvL[0] = d.cvL[6]
	d.cvL[6] = d.cvR[6]
	d.cvR[6] = d.cvR[2]
	d.cvR[2] = d.cvL[1]
	d.cvL[1] = d.cvL[4]
	d.cvL[4] = d.cvR[4]
	d.cvR[4] = d.cvR[0]
	d.cvR[0] = d.cvL[2]
	d.cvL[2] = d.cvL[5]
	d.cvL[5] = d.cvR[7]
	d.cvR[7] = d.cvR[1]
	d.cvR[1] = d.cvL[3]
	d.cvL[3] = d.cvL[7]
	d.cvL[7] = d.cvR[5]
	d.cvR[5] = d.cvR[3]
	d.cvR[3] = t
}

package hash

import (
	"encoding/binary"
	"math/bits"
)

// LSH-512 family (LSH-384, LSH-512 and LSH-512-256): 64-bit words, 256-byte
// message blocks, 28 mixing steps per block. The step structure is the same
// as the 32-bit family, only the word width, rotation amounts and constants
// differ.

const (
	numSteps512 = 28

	alphaEven512 = 23
	betaEven512  = 59
	alphaOdd512  = 7
	betaOdd512   = 3
)

var gamma512 = [8]int{0, 16, 32, 48, 8, 24, 40, 56}

var iv384 = [16]uint64{
	0x53156a66292808f6, 0xb2c4f362b204c2bc, 0xb84b7213bfa05c4e, 0x976ceb7c1b299f73,
	0xdf0cc63c0570ae97, 0xda4441baa486ce3f, 0x6559f5d9b5f2acc2, 0x22dacf19b4b52a16,
	0xbbcdacefde80953a, 0xc9891a2879725b3e, 0x7c9fe6330237e440, 0xa30ba550553f7431,
	0xbb08043fb34e3e30, 0xa0dec48d54618ead, 0x150317267464bc57, 0x32d1501fde63dc93,
}

var iv512 = [16]uint64{
	0xadd50f3c7f07094e, 0xe3f3cee8f9418a4f, 0xb527ecde5b3d0ae9, 0x2ef6dec68076f501,
	0x8cb994cae5aca216, 0xfbb9eae4bba48cc7, 0x650a526174725fea, 0x1f9a61a73f8d8085,
	0xb6607378173b539b, 0x1bc99853b0c0b9ed, 0xdf727fc19b182d47, 0xdbef360cf893a457,
	0x4981f5e570147e80, 0xd00c4490ca7d3e30, 0x5d73940c0e4ae1ec, 0x894085e2edb2d819,
}

var iv512_256 = [16]uint64{
	0x6dc57c33df989423, 0xd8ea7f6e8342c199, 0x76df8356f8603ac4, 0x40f1b44de838223a,
	0x39ffe7cfc31484cd, 0x39c4326cc5281548, 0x8a2ff85a346045d8, 0xff202aa46dbdd61e,
	0xcf785b3cd5eaa6c5, 0x10236cb2365ea266, 0x8c06fd0aa43ba42c, 0x4f3f3baec8152f2b,
	0x9b46188558eb3fc3, 0x4faa8e879d238593, 0x9a3f8f29fd9b8816, 0x1766475d90909ace,
}

// stepConstants512 holds the 28 8-word step constants of the 64-bit family,
// filled at init by the same rotate-and-add recurrence as the 32-bit table.
var stepConstants512 [numSteps512 * 8]uint64

func init() {
	sc := [8]uint64{
		0x97884283c938982a, 0xba1fca93533e2355, 0xc519a2e87aeb1c03, 0x9a0fc95462af17b1,
		0xfc3dda8ab019a82b, 0x02825d079a895407, 0x79f2d0a7ee06a6f7, 0xd76d15eed9fdf5fe,
	}
	for j := 0; j < numSteps512; j++ {
		copy(stepConstants512[8*j:8*j+8], sc[:])
		for l, c := range sc {
			sc[l] = c + bits.RotateLeft64(c, 8)
		}
	}
}

// digest512 is the streaming state of an LSH-384, LSH-512 or LSH-512-256
// computation. See digest256 for the layout; only the word type differs.
type digest512 struct {
	cvL [8]uint64
	cvR [8]uint64

	msgEvenL [8]uint64
	msgEvenR [8]uint64
	msgOddL  [8]uint64
	msgOddR  [8]uint64

	x  [BlockLenLsh512]byte
	nx int

	outLen    int
	algo      HashingAlgorithm
	finalized bool
}

// NewLSH384 returns a new instance of LSH-384 hasher
func NewLSH384() Hasher {
	d := &digest512{algo: LSH_384, outLen: HashLenLsh384}
	d.Reset()
	return d
}

// NewLSH512 returns a new instance of LSH-512 hasher
func NewLSH512() Hasher {
	d := &digest512{algo: LSH_512, outLen: HashLenLsh512}
	d.Reset()
	return d
}

// NewLSH512_256 returns a new instance of LSH-512-256 hasher, the 64-bit
// variant truncated to a 256-bit digest. Its initialization vector differs
// from LSH-512, so the digest is not a prefix of the LSH-512 one.
func NewLSH512_256() Hasher {
	d := &digest512{algo: LSH_512_256, outLen: HashLenLsh512_256}
	d.Reset()
	return d
}

// Algorithm returns the hashing algorithm of the hasher.
func (d *digest512) Algorithm() HashingAlgorithm {
	return d.algo
}

// Size returns the hash output length in bytes.
func (d *digest512) Size() int {
	return d.outLen
}

// BlockSize returns the hash block length in bytes.
func (d *digest512) BlockSize() int {
	return BlockLenLsh512
}

// Reset loads the initialization vector of the variant and clears the
// pending block, making the hasher ready for a fresh stream.
func (d *digest512) Reset() {
	iv := &iv512
	switch d.algo {
	case LSH_384:
		iv = &iv384
	case LSH_512_256:
		iv = &iv512_256
	}
	copy(d.cvL[:], iv[:8])
	copy(d.cvR[:], iv[8:])
	d.nx = 0
	d.finalized = false
}

// Write absorbs p into the hash state. Any chunking of the input stream
// produces the same final digest. It returns a misuse error when called
// after finalization without an intervening Reset.
func (d *digest512) Write(p []byte) (int, error) {
	if d.finalized {
		return 0, misuseErrorf("hasher is already finalized, Reset it before absorbing more data")
	}
	n := len(p)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == BlockLenLsh512 {
			d.compress(d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	for len(p) >= BlockLenLsh512 {
		d.compress(p[:BlockLenLsh512])
		p = p[BlockLenLsh512:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// SumHash finalizes the stream and returns the digest of the variant.
// Finalization consumes the state: the hasher rejects further writes until
// Reset, and calling SumHash a second time panics.
func (d *digest512) SumHash() Hash {
	if d.finalized {
		panic("lsh: SumHash on a finalized hasher, Reset it before reuse")
	}
	d.finalize()
	return d.sum(d.outLen)
}

// TruncatedSumHash finalizes the stream like SumHash and returns the first
// size bytes of the digest.
func (d *digest512) TruncatedSumHash(size int) (Hash, error) {
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
func (d *digest512) ComputeHash(data []byte) Hash {
	d.Reset()
	_, _ = d.Write(data)
	return d.SumHash()
}

func (d *digest512) finalize() {
	d.x[d.nx] = 0x80
	for i := d.nx + 1; i < BlockLenLsh512; i++ {
		d.x[i] = 0
	}
	d.compress(d.x[:])
	for i := range d.cvL {
		d.cvL[i] ^= d.cvR[i]
	}
	d.finalized = true
}

func (d *digest512) sum(size int) Hash {
	var out [HashLenLsh512]byte
	for i, v := range d.cvL {
		binary.LittleEndian.PutUint64(out[8*i:], v)
	}
	return out[:size]
}

// compress absorbs one full message block into the chaining value.
func (d *digest512) compress(block []byte) {
	d.loadBlock(block)

	d.addEven()
	d.mix(0, alphaEven512, betaEven512)
	d.wordPerm()

	d.addOdd()
	d.mix(1, alphaOdd512, betaOdd512)
	d.wordPerm()

	for i := 1; i < numSteps512/2; i++ {
		d.expandEven()
		d.addEven()
		d.mix(2*i, alphaEven512, betaEven512)
		d.wordPerm()

		d.expandOdd()
		d.addOdd()
		d.mix(2*i+1, alphaOdd512, betaOdd512)
		d.wordPerm()
	}

	// final message addition with one more expanded submessage
	d.expandEven()
	d.addEven()
}

func (d *digest512) loadBlock(block []byte) {
	for i := 0; i < 8; i++ {
		d.msgEvenL[i] = binary.LittleEndian.Uint64(block[8*i:])
		d.msgEvenR[i] = binary.LittleEndian.Uint64(block[8*(i+8):])
		d.msgOddL[i] = binary.LittleEndian.Uint64(block[8*(i+16):])
		d.msgOddR[i] = binary.LittleEndian.Uint64(block[8*(i+24):])
	}
}

func (d *digest512) expandEven() {
	expandHalf512(&d.msgEvenL, &d.msgOddL)
	expandHalf512(&d.msgEvenR, &d.msgOddR)
}

func (d *digest512) expandOdd() {
	expandHalf512(&d.msgOddL, &d.msgEvenL)
	expandHalf512(&d.msgOddR, &d.msgEvenR)
}

// expandHalf512 rewrites cur with prev[l] + cur[tau(l)] for one 8-word half,
// tau = (3,2,0,1,7,4,5,6).
func expandHalf512(cur, prev *[8]uint64) {
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

func (d *digest512) addEven() {
	for i := 0; i < 8; i++ {
		d.cvL[i] ^= d.msgEvenL[i]
		d.cvR[i] ^= d.msgEvenR[i]
	}
}

func (d *digest512) addOdd() {
	for i := 0; i < 8; i++ {
		d.cvL[i] ^= d.msgOddL[i]
		d.cvR[i] ^= d.msgOddR[i]
	}
}

func (d *digest512) mix(step, alpha, beta int) {
	sc := stepConstants512[8*step : 8*step+8]
	for i := 0; i < 8; i++ {
		d.cvL[i] += d.cvR[i]
		d.cvL[i] = bits.RotateLeft64(d.cvL[i], alpha) ^ sc[i]
		d.cvR[i] += d.cvL[i]
		d.cvR[i] = bits.RotateLeft64(d.cvR[i], beta)
		d.cvL[i] += d.cvR[i]
		d.cvR[i] = bits.RotateLeft64(d.cvR[i], gamma512[i])
	}
}

func (d *digest512) wordPerm() {
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

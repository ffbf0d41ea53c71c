package xtea

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// BlockSize is the XTEA block size in bytes.
	BlockSize = 8

	// DefaultRounds is the round count recommended by the algorithm's
	// designers. Other even counts round-trip correctly but give up the
	// standard security margin.
	DefaultRounds = 32

	// delta is the key schedule constant, derived from the golden ratio.
	delta = 0x9E3779B9
)

var (
	ErrOddRounds = errors.New("xtea: round count must be even")
)

// Cipher holds the 128-bit key as four 32-bit words. It is immutable after
// construction and safe for concurrent use; the block transforms keep no
// state between calls.
type Cipher struct {
	key    [4]uint32
	rounds uint32
}

// NewCipher creates an XTEA cipher from the given key words using the
// standard 32 rounds. Every key is accepted, including all-zero.
func NewCipher(key [4]uint32) *Cipher {
	return &Cipher{key: key, rounds: DefaultRounds}
}

// NewCipherWithRounds creates an XTEA cipher with a custom round count.
// The count must be even: rounds come in pairs, one update per block half,
// and decipherment walks the same pairs backwards.
func NewCipherWithRounds(key [4]uint32, rounds uint32) (*Cipher, error) {
	if rounds&1 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddRounds, rounds)
	}
	return &Cipher{key: key, rounds: rounds}, nil
}

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// EncipherBlock enciphers one 64-bit block given as two 32-bit halves.
// All additions and shifts wrap modulo 2^32.
func (c *Cipher) EncipherBlock(v0, v1 uint32) (uint32, uint32) {
	var sum uint32
	for i := uint32(0); i < c.rounds; i++ {
		v0 += ((v1<<4 ^ v1>>5) + v1) ^ (sum + c.key[sum&3])
		sum += delta
		v1 += ((v0<<4 ^ v0>>5) + v0) ^ (sum + c.key[(sum>>11)&3])
	}
	return v0, v1
}

// DecipherBlock inverts EncipherBlock. The accumulator starts at its forward
// end state, delta*rounds, and the round pairs run in reverse.
func (c *Cipher) DecipherBlock(v0, v1 uint32) (uint32, uint32) {
	sum := delta * c.rounds
	for i := uint32(0); i < c.rounds; i++ {
		v1 -= ((v0<<4 ^ v0>>5) + v0) ^ (sum + c.key[(sum>>11)&3])
		sum -= delta
		v0 -= ((v1<<4 ^ v1>>5) + v1) ^ (sum + c.key[sum&3])
	}
	return v0, v1
}

// Block returns a crypto/cipher.Block view of c that maps each 8-byte block
// to two 32-bit words at the given byte order. The returned Block follows
// the standard library contract: Encrypt and Decrypt panic on short blocks.
func (c *Cipher) Block(order binary.ByteOrder) cipher.Block {
	return blockAdapter{c: c, order: order}
}

type blockAdapter struct {
	c     *Cipher
	order binary.ByteOrder
}

func (b blockAdapter) BlockSize() int { return BlockSize }

func (b blockAdapter) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("xtea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("xtea: output not full block")
	}
	v0, v1 := b.c.EncipherBlock(b.order.Uint32(src[0:4]), b.order.Uint32(src[4:8]))
	b.order.PutUint32(dst[0:4], v0)
	b.order.PutUint32(dst[4:8], v1)
}

func (b blockAdapter) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("xtea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("xtea: output not full block")
	}
	v0, v1 := b.c.DecipherBlock(b.order.Uint32(src[0:4]), b.order.Uint32(src[4:8]))
	b.order.PutUint32(dst[0:4], v0)
	b.order.PutUint32(dst[4:8], v1)
}

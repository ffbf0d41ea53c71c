package xtea

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength reports buffers whose length is not a whole number
	// of 8-byte blocks, or an output buffer whose length differs from the
	// input's.
	ErrInvalidLength = errors.New("xtea: buffer length must be a whole number of 8-byte blocks")
)

// EncipherBuffer enciphers src into dst block by block, mapping each 4-byte
// group to a 32-bit word at the given byte order. dst must be the same
// length as src and both must be a whole number of blocks; otherwise
// ErrInvalidLength is returned and nothing is written. Blocks are ciphered
// independently, with no chaining. dst may alias src for in-place use.
func (c *Cipher) EncipherBuffer(dst, src []byte, order binary.ByteOrder) error {
	return c.cipherBuffer(dst, src, order, true)
}

// DecipherBuffer deciphers src into dst. Same contract as EncipherBuffer.
func (c *Cipher) DecipherBuffer(dst, src []byte, order binary.ByteOrder) error {
	return c.cipherBuffer(dst, src, order, false)
}

func (c *Cipher) cipherBuffer(dst, src []byte, order binary.ByteOrder, encipher bool) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst is %d bytes, src is %d", ErrInvalidLength, len(dst), len(src))
	}
	if len(src)%BlockSize != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(src))
	}
	for i := 0; i < len(src); i += BlockSize {
		v0 := order.Uint32(src[i : i+4])
		v1 := order.Uint32(src[i+4 : i+8])
		if encipher {
			v0, v1 = c.EncipherBlock(v0, v1)
		} else {
			v0, v1 = c.DecipherBlock(v0, v1)
		}
		order.PutUint32(dst[i:i+4], v0)
		order.PutUint32(dst[i+4:i+8], v1)
	}
	return nil
}

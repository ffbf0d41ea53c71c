package xtea

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

var (
	// ErrIncompleteBlock reports a stream that ended partway through an
	// 8-byte block. Trailing bytes are never padded or dropped.
	ErrIncompleteBlock = errors.New("xtea: stream ended mid-block")
)

// EncipherStream reads 8-byte blocks from src, enciphers each at the given
// byte order, and writes them to dst until src is exhausted. A source that
// ends partway through a block yields ErrIncompleteBlock; other I/O errors
// propagate unmodified. Blocks processed before an error may already have
// been written to dst.
func (c *Cipher) EncipherStream(dst io.Writer, src io.Reader, order binary.ByteOrder) error {
	return c.cipherStream(dst, src, order, true)
}

// DecipherStream deciphers src into dst. Same contract as EncipherStream.
func (c *Cipher) DecipherStream(dst io.Writer, src io.Reader, order binary.ByteOrder) error {
	return c.cipherStream(dst, src, order, false)
}

func (c *Cipher) cipherStream(dst io.Writer, src io.Reader, order binary.ByteOrder, encipher bool) error {
	bw := bufio.NewWriter(dst)
	var buf [BlockSize]byte
	for {
		_, err := io.ReadFull(src, buf[:])
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrIncompleteBlock
		}
		if err != nil {
			return err
		}

		v0 := order.Uint32(buf[0:4])
		v1 := order.Uint32(buf[4:8])
		if encipher {
			v0, v1 = c.EncipherBlock(v0, v1)
		} else {
			v0, v1 = c.DecipherBlock(v0, v1)
		}
		order.PutUint32(buf[0:4], v0)
		order.PutUint32(buf[4:8], v1)

		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

package xtea

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the XTEA key size in bytes.
const KeySize = 16

var (
	ErrInvalidKeySize = errors.New("xtea: key must be exactly 16 bytes")
)

// KeyFromBytes decodes a 16-byte key into four 32-bit words, mapping each
// 4-byte group at the given byte order. Word order matches the key array
// indexing of the reference algorithm.
func KeyFromBytes(b []byte, order binary.ByteOrder) ([4]uint32, error) {
	if len(b) != KeySize {
		return [4]uint32{}, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(b))
	}
	var key [4]uint32
	for i := range key {
		key[i] = order.Uint32(b[i*4:])
	}
	return key, nil
}

// DeriveKey derives an XTEA key from secret keying material using
// HKDF-SHA256. salt can be nil (uses zero salt), info provides context
// binding. The 16 bytes of output are loaded big-endian.
func DeriveKey(secret, salt, info []byte) ([4]uint32, error) {
	hk := hkdf.New(sha256.New, secret, salt, info)
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(hk, raw); err != nil {
		return [4]uint32{}, err
	}
	return KeyFromBytes(raw, binary.BigEndian)
}

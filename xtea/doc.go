// Package xtea implements the XTEA block cipher: 64-bit blocks, a 128-bit
// key held as four 32-bit words, and 32 Feistel rounds. It also provides
// convenience helpers for ciphering byte buffers and byte streams under an
// explicit byte order.
//
// Design goals:
//   - Bit-exact XTEA round function and key schedule indexing
//   - Explicit byte order on every buffer and stream operation, never implied
//   - Strict full-block handling: partial blocks are errors, never padded
//   - No chaining between blocks; modes of operation, padding and
//     authentication are left to the caller
package xtea

package crcspeed

import "unsafe"

// Word is the set of unsigned integer types a CRC register can have.
// The type parameter fixes the CRC width: uint16 for CRC-16, uint64 for CRC-64.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Func is a reference CRC: it updates crc with the bytes of p.
//
// The slice-by-8 engine calls it only while building a table, one byte at a
// time, so it may be as slow as a bit-at-a-time loop. It must be pure and
// must not apply any initial or final inversion.
type Func[T Word] func(crc T, p []byte) T

// widthOf returns the bit width of T.
func widthOf[T Word]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// maskOf returns a uint64 with the low width bits set.
func maskOf(width uint) uint64 {
	return ^uint64(0) >> (64 - width)
}

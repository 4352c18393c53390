package crcspeed

import (
	"encoding/binary"
	"unsafe"
)

// Update returns the CRC of p continued from crc, processing eight bytes
// per step. The result equals the reference function of the table applied
// to (crc, p).
//
// An empty p returns crc unchanged.
func Update[T Word](t *Table[T], crc T, p []byte) T {
	return t.Update(crc, p)
}

// Update returns the CRC of p continued from crc. See the package function.
func (t *Table[T]) Update(crc T, p []byte) T {
	if t == nil || t.update == nil {
		panic(ErrTableNotBuilt)
	}
	if len(p) == 0 {
		return crc
	}
	return t.update(t, crc, p)
}

// Checksum returns the CRC of p starting from a zero register.
func (t *Table[T]) Checksum(p []byte) T {
	return t.Update(0, p)
}

// headLen returns how many leading bytes of p precede the first 8-byte
// aligned address, capped at len(p).
func headLen(p []byte) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	n := int(-addr & 7)
	if n > len(p) {
		n = len(p)
	}
	return n
}

// updateLittle is the kernel for tables whose register consumes its low byte
// first: reflected CRCs on little-endian words, or byte-reversed MSB-first ones.
func updateLittle[T Word](t *Table[T], in T, p []byte) T {
	tab := &t.rows
	crc := uint64(in)
	if t.reversed {
		crc = reverseBytes(crc, t.width)
	}

	head := headLen(p)
	for _, b := range p[:head] {
		crc = uint64(tab[0][byte(crc)^b]) ^ (crc >> 8)
	}
	p = p[head:]

	for len(p) >= 8 {
		crc ^= binary.LittleEndian.Uint64(p)
		crc = uint64(tab[7][byte(crc)]) ^
			uint64(tab[6][byte(crc>>8)]) ^
			uint64(tab[5][byte(crc>>16)]) ^
			uint64(tab[4][byte(crc>>24)]) ^
			uint64(tab[3][byte(crc>>32)]) ^
			uint64(tab[2][byte(crc>>40)]) ^
			uint64(tab[1][byte(crc>>48)]) ^
			uint64(tab[0][byte(crc>>56)])
		p = p[8:]
	}

	for _, b := range p {
		crc = uint64(tab[0][byte(crc)^b]) ^ (crc >> 8)
	}

	if t.reversed {
		crc = reverseBytes(crc, t.width)
	}
	return T(crc)
}

// updateBig is the kernel for tables whose register consumes its high byte
// first: MSB-first CRCs on big-endian words, or byte-reversed reflected ones.
func updateBig[T Word](t *Table[T], in T, p []byte) T {
	tab := &t.rows
	mask := maskOf(t.width)
	top := t.width - 8
	align := 64 - t.width

	crc := uint64(in)
	if t.reversed {
		crc = reverseBytes(crc, t.width)
	}

	head := headLen(p)
	for _, b := range p[:head] {
		crc = uint64(tab[0][byte(crc>>top)^b]) ^ ((crc << 8) & mask)
	}
	p = p[head:]

	for len(p) >= 8 {
		x := binary.BigEndian.Uint64(p) ^ (crc << align)
		crc = uint64(tab[0][byte(x)]) ^
			uint64(tab[1][byte(x>>8)]) ^
			uint64(tab[2][byte(x>>16)]) ^
			uint64(tab[3][byte(x>>24)]) ^
			uint64(tab[4][byte(x>>32)]) ^
			uint64(tab[5][byte(x>>40)]) ^
			uint64(tab[6][byte(x>>48)]) ^
			uint64(tab[7][byte(x>>56)])
		p = p[8:]
	}

	for _, b := range p {
		crc = uint64(tab[0][byte(crc>>top)^b]) ^ ((crc << 8) & mask)
	}

	if t.reversed {
		crc = reverseBytes(crc, t.width)
	}
	return T(crc)
}

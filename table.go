package crcspeed

import (
	"math/bits"
	"time"

	"github.com/hupe1980/crcspeed/internal/endian"
)

// ByteOrder selects which of the two slice-by-8 kernels a table is built for.
type ByteOrder = endian.Order

const (
	// LittleEndian loads 8-byte words least significant byte first.
	LittleEndian = endian.Little
	// BigEndian loads 8-byte words most significant byte first.
	BigEndian = endian.Big
)

// NativeByteOrder returns the byte order tables are built for by default.
// It is the host order unless CRCSPEED_BYTEORDER overrides it.
func NativeByteOrder() ByteOrder {
	return endian.Native()
}

// Table holds the precomputed slice-by-8 contributions for one reference CRC.
//
// rows[k][n] is the CRC contribution of byte n followed by k zero bytes,
// stored byte-reversed when reversed is set. A Table is immutable once
// MakeTable returns it and may be shared by any number of goroutines.
type Table[T Word] struct {
	rows     [8][256]T
	width    uint
	order    ByteOrder
	msbFirst bool
	reversed bool
	update   func(t *Table[T], crc T, p []byte) T
}

// MakeTable builds the 8x256 lookup table for fn.
//
// By default fn is treated as a reflected CRC (the register shifts right, as
// CRC-64/REDIS and CRC-32/IEEE do) and the table is laid out for the native
// byte order. Use WithMSBFirst for CRCs that shift left and WithByteOrder to
// force a kernel.
func MakeTable[T Word](fn Func[T], optFns ...Option) *Table[T] {
	o := applyOptions(optFns)
	start := time.Now()

	t := &Table[T]{
		width:    widthOf[T](),
		order:    o.byteOrder,
		msbFirst: o.msbFirst,
	}
	t.rows = buildRows(fn, t.width, t.msbFirst)

	// The little lane consumes the low byte of the register first, the big
	// lane the high byte. Reverse whenever the CRC shifts the other way.
	t.reversed = (t.order == BigEndian) != t.msbFirst
	if t.reversed {
		for k := range t.rows {
			for n := range t.rows[k] {
				t.rows[k][n] = T(reverseBytes(uint64(t.rows[k][n]), t.width))
			}
		}
	}

	if t.order == BigEndian {
		t.update = updateBig[T]
	} else {
		t.update = updateLittle[T]
	}

	elapsed := time.Since(start)
	o.metricsCollector.RecordTableBuild(int(t.width), t.order, elapsed)
	o.logger.LogTableBuild(int(t.width), t.order.String(), t.msbFirst, t.reversed, elapsed)

	return t
}

// buildRows fills row 0 from fn and derives rows 1..7 by pushing one more
// zero byte through the register per row.
func buildRows[T Word](fn Func[T], width uint, msbFirst bool) [8][256]T {
	var rows [8][256]T

	var one [1]byte
	for n := range 256 {
		one[0] = byte(n)
		rows[0][n] = fn(0, one[:])
	}

	mask := maskOf(width)
	top := width - 8
	for n := range 256 {
		crc := uint64(rows[0][n])
		for k := 1; k < 8; k++ {
			if msbFirst {
				crc = uint64(rows[0][byte(crc>>top)]) ^ ((crc << 8) & mask)
			} else {
				crc = uint64(rows[0][byte(crc)]) ^ (crc >> 8)
			}
			rows[k][n] = T(crc)
		}
	}

	return rows
}

// reverseBytes reverses the order of the width/8 low bytes of a.
func reverseBytes(a uint64, width uint) uint64 {
	return bits.ReverseBytes64(a) >> (64 - width)
}

// Width returns the CRC width in bits.
func (t *Table[T]) Width() int {
	return int(t.width)
}

// ByteOrder returns the byte order the table was built for.
func (t *Table[T]) ByteOrder() ByteOrder {
	return t.order
}

// MSBFirst reports whether the table was built for a left-shifting CRC.
func (t *Table[T]) MSBFirst() bool {
	return t.msbFirst
}

// Reversed reports whether the entries are stored byte-reversed.
func (t *Table[T]) Reversed() bool {
	return t.reversed
}

// Entry returns rows[k][n] in register orientation, undoing any byte
// reversal applied for the selected kernel. Tables built from the same
// reference function agree on every Entry regardless of byte order.
func (t *Table[T]) Entry(k int, n byte) T {
	v := t.rows[k][n]
	if t.reversed {
		return T(reverseBytes(uint64(v), t.width))
	}
	return v
}

// Equal reports whether t and other hold bitwise-identical tables.
func (t *Table[T]) Equal(other *Table[T]) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.width == other.width &&
		t.order == other.order &&
		t.msbFirst == other.msbFirst &&
		t.reversed == other.reversed &&
		t.rows == other.rows
}

package crcspeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeTableIdempotent(t *testing.T) {
	for _, order := range byteOrders {
		a := MakeTable(Reflected[uint64](0x95ac9329ac4bc9b5), WithByteOrder(order))
		b := MakeTable(Reflected[uint64](0x95ac9329ac4bc9b5), WithByteOrder(order))
		assert.True(t, a.Equal(b), "order=%s", order)
		assert.Equal(t, a.rows, b.rows)

		x := CRC16XModem.MakeTable(WithByteOrder(order))
		y := MakeTable(Normal[uint16](0x1021), WithByteOrder(order), WithMSBFirst(true))
		assert.True(t, x.Equal(y), "order=%s", order)
		assert.Equal(t, x.rows, y.rows)
	}

	a := CRC16XModem.MakeTable(WithByteOrder(LittleEndian))
	b := CRC16XModem.MakeTable(WithByteOrder(BigEndian))
	assert.False(t, a.Equal(b))
	assert.True(t, (*Table[uint16])(nil).Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestTableRowsFollowZeroBytes(t *testing.T) {
	tests := []struct {
		name     string
		fn       Func[uint32]
		msbFirst bool
	}{
		{"reflected", Reflected[uint32](0xedb88320), false},
		{"normal", Normal[uint32](0x04c11db7), true},
	}
	for _, tc := range tests {
		for _, order := range byteOrders {
			t.Run(tc.name+"/"+order.String(), func(t *testing.T) {
				tab := MakeTable(tc.fn, WithByteOrder(order), WithMSBFirst(tc.msbFirst))
				for k := range 8 {
					for _, n := range []byte{0x00, 0x01, 0x5a, 0x80, 0xff} {
						msg := make([]byte, k+1)
						msg[0] = n
						assert.Equal(t, tc.fn(0, msg), tab.Entry(k, n), "k=%d n=%#x", k, n)
					}
				}
			})
		}
	}
}

func TestTableOrientation(t *testing.T) {
	tests := []struct {
		name     string
		msbFirst bool
		order    ByteOrder
		reversed bool
	}{
		{"reflected little", false, LittleEndian, false},
		{"reflected big", false, BigEndian, true},
		{"msb-first little", true, LittleEndian, true},
		{"msb-first big", true, BigEndian, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tab := MakeTable(Reflected[uint64](0x95ac9329ac4bc9b5), WithByteOrder(tc.order), WithMSBFirst(tc.msbFirst))
			assert.Equal(t, tc.reversed, tab.Reversed())
			assert.Equal(t, tc.msbFirst, tab.MSBFirst())
			assert.Equal(t, tc.order, tab.ByteOrder())
			assert.Equal(t, 64, tab.Width())
		})
	}
}

func TestBigEndianTableIsByteReversed(t *testing.T) {
	little := CRC64Redis.MakeTable(WithByteOrder(LittleEndian))
	big := CRC64Redis.MakeTable(WithByteOrder(BigEndian))

	for k := range 8 {
		for n := range 256 {
			require.Equal(t, reverseBytes(uint64(little.rows[k][n]), 64), uint64(big.rows[k][n]))
			require.Equal(t, little.Entry(k, byte(n)), big.Entry(k, byte(n)))
		}
	}
}

func TestReverseBytes(t *testing.T) {
	assert.Equal(t, uint64(0x0807060504030201), reverseBytes(0x0102030405060708, 64))
	assert.Equal(t, uint64(0x04030201), reverseBytes(0x01020304, 32))
	assert.Equal(t, uint64(0x3412), reverseBytes(0x1234, 16))
	assert.Equal(t, uint64(0xab), reverseBytes(0xab, 8))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 8, CRC8SMBus.MakeTable().Width())
	assert.Equal(t, 16, CRC16XModem.MakeTable().Width())
	assert.Equal(t, 32, CRC32IEEE.MakeTable().Width())
	assert.Equal(t, 64, CRC64Redis.MakeTable().Width())
}

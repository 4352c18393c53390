package crcspeed

import (
	"math/bits"
	"testing"

	"github.com/hupe1980/crcspeed/testutil"
	"github.com/stretchr/testify/assert"
)

// redisCRC64 is CRC-64/REDIS written the way Redis does it: a left-shifting
// register fed the input bits LSB first, reflected on output.
func redisCRC64(p []byte) uint64 {
	const poly = 0xad93d23594c935a9
	var crc uint64
	for _, c := range p {
		for i := byte(0x01); i != 0; i <<= 1 {
			bit := crc&0x8000000000000000 != 0
			if c&i != 0 {
				bit = !bit
			}
			crc <<= 1
			if bit {
				crc ^= poly
			}
		}
	}
	return bits.Reverse64(crc)
}

func TestReflectedMatchesRedisForm(t *testing.T) {
	rng := testutil.NewRNG(3)
	fn := Reflected[uint64](0x95ac9329ac4bc9b5)

	assert.Equal(t, uint64(0xe9c6d914c4b8d9ca), redisCRC64([]byte("123456789")))
	for _, buf := range rng.Buffers(100, 64) {
		assert.Equal(t, redisCRC64(buf), fn(0, buf))
	}
}

func TestReferenceCheckValues(t *testing.T) {
	assert.Equal(t, uint16(0x31c3), Normal[uint16](0x1021)(0, []byte(CheckInput)))
	assert.Equal(t, uint16(0xbb3d), Reflected[uint16](0xa001)(0, []byte(CheckInput)))
	assert.Equal(t, uint8(0xf4), Normal[uint8](0x07)(0, []byte(CheckInput)))
	assert.Equal(t, uint32(0xcbf43926), Reflected[uint32](0xedb88320)(0xffffffff, []byte(CheckInput))^0xffffffff)
}

func TestReferenceEmpty(t *testing.T) {
	assert.Equal(t, uint64(12345), Reflected[uint64](0x95ac9329ac4bc9b5)(12345, nil))
	assert.Equal(t, uint16(0xbeef), Normal[uint16](0x1021)(0xbeef, nil))
}

func TestBytewise(t *testing.T) {
	rng := testutil.NewRNG(5)

	tests := []struct {
		name     string
		fn       Func[uint16]
		msbFirst bool
	}{
		{"xmodem", Normal[uint16](0x1021), true},
		{"arc", Reflected[uint16](0xa001), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lookup := Bytewise(tc.fn, tc.msbFirst)
			for _, buf := range rng.Buffers(100, 40) {
				crc := uint16(rng.Uint64())
				assert.Equal(t, tc.fn(crc, buf), lookup(crc, buf))
			}
		})
	}
}

package crcspeed

// Reflected returns a bit-at-a-time CRC that shifts the register right.
// poly is the bit-reversed polynomial, e.g. 0xedb88320 for CRC-32/IEEE.
func Reflected[T Word](poly T) Func[T] {
	return func(crc T, p []byte) T {
		for _, b := range p {
			crc ^= T(b)
			for range 8 {
				if crc&1 != 0 {
					crc = (crc >> 1) ^ poly
				} else {
					crc >>= 1
				}
			}
		}
		return crc
	}
}

// Normal returns a bit-at-a-time CRC that shifts the register left.
// poly is in normal notation, e.g. 0x1021 for CRC-16/XMODEM.
func Normal[T Word](poly T) Func[T] {
	width := widthOf[T]()
	top := T(1) << (width - 1)
	shift := width - 8
	return func(crc T, p []byte) T {
		for _, b := range p {
			crc ^= T(b) << shift
			for range 8 {
				if crc&top != 0 {
					crc = (crc << 1) ^ poly
				} else {
					crc <<= 1
				}
			}
		}
		return crc
	}
}

// Bytewise returns a byte-at-a-time CRC driven by a single 256-entry table
// derived from fn. It sits between fn and a slice-by-8 Table in speed and
// is mostly useful as a baseline.
func Bytewise[T Word](fn Func[T], msbFirst bool) Func[T] {
	var tab [256]T
	var one [1]byte
	for n := range tab {
		one[0] = byte(n)
		tab[n] = fn(0, one[:])
	}

	width := widthOf[T]()
	if msbFirst {
		mask := maskOf(width)
		top := width - 8
		return func(crc T, p []byte) T {
			c := uint64(crc)
			for _, b := range p {
				c = uint64(tab[byte(c>>top)^b]) ^ ((c << 8) & mask)
			}
			return T(c)
		}
	}
	return func(crc T, p []byte) T {
		c := uint64(crc)
		for _, b := range p {
			c = uint64(tab[byte(c)^b]) ^ (c >> 8)
		}
		return T(c)
	}
}

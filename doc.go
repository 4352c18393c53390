// Package crcspeed computes CRCs eight bytes at a time from a precomputed
// 8x256 lookup table (slice-by-8).
//
// The engine does not know any polynomial. It is driven by a reference CRC,
// a plain bit-at-a-time function, which it calls 256 times while building a
// table. Every later Update produces exactly what the reference function
// would have produced for the same register and bytes, only faster.
//
// # Quick Start
//
//	tab := crcspeed.CRC64Redis.MakeTable()
//	crc := tab.Update(0, []byte("123456789")) // 0xe9c6d914c4b8d9ca
//
// With a custom reference function:
//
//	fn := crcspeed.Normal[uint16](0x1021)
//	tab := crcspeed.MakeTable(fn, crcspeed.WithMSBFirst(true))
//	crc := tab.Update(0, data)
//
// # Width
//
// The CRC width is the type parameter: Table[uint16] is a CRC-16 table,
// Table[uint64] a CRC-64 table. A program using several widths builds one
// table per width.
//
// # Byte Order
//
// Updates run in three phases: single bytes until the data pointer is
// 8-byte aligned, 8-byte words, then the remaining tail bytes. Words are
// folded with one of two kernels, one per byte order. The kernel is chosen
// once, in MakeTable, from the host order (golang.org/x/sys/cpu), the
// CRCSPEED_BYTEORDER environment variable, or WithByteOrder. Tables for the
// "other" register direction are stored byte-reversed.
//
// # Concurrency
//
// A Table is immutable after MakeTable returns. Any number of goroutines may
// call Update on the same table without locking.
//
// # Incremental Use
//
// The register is never inverted by Update, so a CRC over a buffer split in
// two parts can be chained:
//
//	crc := tab.Update(tab.Update(0, a), b) // == tab.Update(0, append(a, b...))
//
// Models with Init and XorOut apply them around Update in Model.Checksum.
package crcspeed

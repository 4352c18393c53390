// Package testutil provides testing utilities for crcspeed.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG for random buffers and helpers
// for placing a buffer at a chosen offset from an 8-byte boundary.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(1 << 20)
//	crc := rng.Uint64()
//
// # Alignment
//
//	p := testutil.AtOffset(buf, 3) // same content, data pointer ≡ 3 (mod 8)
package testutil

// Package endian reports the byte order used to lay out multi-byte words.
//
// The host order is detected once at package init from golang.org/x/sys/cpu.
// Setting CRCSPEED_BYTEORDER to "little" or "big" overrides the detected
// order for the whole process, which is how CI exercises the big-endian
// kernels on little-endian runners:
//
//	CRCSPEED_BYTEORDER=big go test ./...
package endian

package endian

import (
	"os"
	"strings"

	"golang.org/x/sys/cpu"
)

// Order is the layout of bytes inside a machine word.
type Order uint8

const (
	// Little stores the least significant byte at the lowest address.
	Little Order = iota
	// Big stores the most significant byte at the lowest address.
	Big
)

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "CRCSPEED_BYTEORDER"

// String returns the string representation of an Order.
func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}

// Valid reports whether o is Little or Big.
func (o Order) Valid() bool {
	return o == Little || o == Big
}

// Parse parses a string into an Order.
// Accepts "little", "le", "big" and "be" in any case.
func Parse(s string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return Little, true
	case "big", "be":
		return Big, true
	default:
		return Little, false
	}
}

// Package-level state, written once by init.
var (
	hostOrder   Order
	activeOrder Order
	hasOverride bool
)

func init() {
	hostOrder = detect()
	activeOrder = hostOrder

	if override := os.Getenv(EnvOverride); override != "" {
		if o, ok := Parse(override); ok {
			activeOrder = o
			hasOverride = true
		}
	}
}

func detect() Order {
	if cpu.IsBigEndian {
		return Big
	}
	return Little
}

// Host returns the byte order of the CPU, ignoring any override.
func Host() Order {
	return hostOrder
}

// Native returns the byte order new tables are built for: the host order,
// or the value of CRCSPEED_BYTEORDER if it was set to a valid order.
func Native() Order {
	return activeOrder
}

// IsOverridden returns true if CRCSPEED_BYTEORDER was set.
func IsOverridden() bool {
	return hasOverride
}

package crcspeed

import (
	"errors"
	"fmt"
)

var (
	// ErrTableNotBuilt is the panic value of Update on a Table that did not
	// come from MakeTable.
	ErrTableNotBuilt = errors.New("crcspeed: table not built")
)

// CheckMismatchError is returned by Model.Verify when a table does not
// reproduce the model's check value.
type CheckMismatchError struct {
	Model    string
	Expected uint64
	Actual   uint64
	width    int
}

func (e *CheckMismatchError) Error() string {
	digits := e.width / 4
	return fmt.Sprintf("%s: check value mismatch: expected 0x%0*x, got 0x%0*x",
		e.Model, digits, e.Expected, digits, e.Actual)
}

// IsCheckMismatch returns true if err is or wraps a *CheckMismatchError.
func IsCheckMismatch(err error) bool {
	var cm *CheckMismatchError
	return errors.As(err, &cm)
}

package rsacompat

import (
	"errors"
	"fmt"
)

var (
	// ErrAlloc indicates the library could not allocate a key or a value.
	ErrAlloc = errors.New("rsacompat: allocation failed")

	// ErrImport indicates the library rejected components during Import.
	ErrImport = errors.New("rsacompat: component import rejected")

	// ErrGenerate indicates key pair generation failed.
	ErrGenerate = errors.New("rsacompat: key generation failed")

	// ErrExData indicates a value could not be attached to a key.
	ErrExData = errors.New("rsacompat: ex-data index rejected")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsacompat.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// assert panics when a calling contract is broken.
func assert(cond bool, msg string) {
	if !cond {
		panic("rsacompat: " + msg)
	}
}

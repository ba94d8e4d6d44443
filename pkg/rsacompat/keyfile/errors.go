package keyfile

import "errors"

var (
	// ErrFormat indicates input that is not in any supported encoding.
	ErrFormat = errors.New("keyfile: unrecognized key format")

	// ErrNotPrivate indicates an operation that needs private components
	// was given a public key.
	ErrNotPrivate = errors.New("keyfile: key has no private components")

	// ErrInconsistent indicates components that do not form a valid key.
	ErrInconsistent = errors.New("keyfile: inconsistent key components")
)

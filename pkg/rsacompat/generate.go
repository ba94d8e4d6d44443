package rsacompat

import (
	"fmt"

	"github.com/rsacompat/rsacompat-go/internal/rsalib"
)

// GenerateKey creates a new 2048-bit private key with public exponent 65537.
//
// On failure nothing allocated along the way survives, the library's
// diagnostic is logged, and the returned error wraps ErrGenerate.
func GenerateKey() (*Key, error) {
	if rsalib.VersionNumber() < rsalib.Version098 {
		key, err := rsalib.GenerateKey(KeyBits, PublicExponent)
		if err != nil {
			return nil, generateFailed(nil, err)
		}
		return key, nil
	}

	e, err := rsalib.NewBN()
	if err != nil {
		return nil, generateFailed(ErrAlloc, err)
	}
	e.SetWord(PublicExponent)

	key, err := rsalib.New()
	if err != nil {
		e.Free()
		return nil, generateFailed(ErrAlloc, err)
	}

	if err := rsalib.GenerateKeyEx(key, KeyBits, e); err != nil {
		key.Free()
		e.Free()
		return nil, generateFailed(nil, err)
	}

	e.Free()
	return key, nil
}

func generateFailed(kind, err error) error {
	diag := diagnostic(err)
	warn("GenerateKey", diag)
	if kind != nil {
		return &Error{Op: "GenerateKey", Err: fmt.Errorf("%w: %w: %s", ErrGenerate, kind, diag)}
	}
	return &Error{Op: "GenerateKey", Err: fmt.Errorf("%w: %s", ErrGenerate, diag)}
}

//go:build !cgo || windows

package rsalib

import "github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"

// Native reports whether the system crypto library is linked in. Without
// cgo the library is emulated in Go and the build tags pick which release it
// behaves like.
const Native = false

// handle is empty: the components in RSA.vals are the key's only storage.
type handle struct{}

func newHandle() (handle, error) {
	addAllAlgorithms()
	return handle{}, nil
}

func (r *RSA) nativeFree() {}

func (r *RSA) nativeSet0(int, []*bn.Int) error { return nil }

func (r *RSA) nativeAssign(Field, *bn.Int) error { return nil }

func (r *RSA) nativeBits() int {
	return r.vals[FieldN].NumBits()
}

func (r *RSA) nativeSize() int {
	return r.vals[FieldN].EncodedLen()
}

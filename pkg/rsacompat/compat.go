package rsacompat

import (
	"fmt"

	"github.com/rsacompat/rsacompat-go/internal/rsalib"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

// Key is one RSA key handle of the linked library. It is owned by whoever
// created it and released with Free.
type Key = rsalib.RSA

// Fixed key policy.
const (
	KeyBits        = 2048
	KeyBytes       = KeyBits / 8
	PublicExponent = 65537
)

// Components carries the nine RSA values. N and E are always required. The
// six private values are either all set or all nil.
type Components struct {
	N *bn.Int // modulus
	E *bn.Int // public exponent
	D *bn.Int // private exponent

	P *bn.Int // first prime factor
	Q *bn.Int // second prime factor

	Dmp1 *bn.Int // d mod (p-1)
	Dmq1 *bn.Int // d mod (q-1)
	Iqmp *bn.Int // q^-1 mod p
}

// IsPrivate reports whether c carries private components.
func (c Components) IsPrivate() bool {
	return c.D != nil
}

// checkGrouping enforces that the private components come as a set.
func (c Components) checkGrouping() {
	rest := []*bn.Int{c.P, c.Q, c.Dmp1, c.Dmq1, c.Iqmp}
	for _, v := range rest {
		if c.D == nil {
			assert(v == nil, "private components given without d")
		} else {
			assert(v != nil, "d given without every private component")
		}
	}
}

// NewKey allocates an empty key handle.
func NewKey() (*Key, error) {
	key, err := rsalib.New()
	if err != nil {
		return nil, &Error{Op: "NewKey", Err: fmt.Errorf("%w: %s", ErrAlloc, diagnostic(err))}
	}
	return key, nil
}

// ValidSize reports whether key has a 2048-bit modulus serialized in exactly
// 256 bytes. Both conditions are checked; a modulus with a padded encoding
// can report 2048 bits and still be the wrong size.
func ValidSize(key *Key) bool {
	assert(key != nil, "nil key")
	return rsalib.Size(key) == KeyBytes && layout.bits(key) == KeyBits
}

// Bits returns the bit length of key's modulus as the linked library
// reports it.
func Bits(key *Key) int {
	assert(key != nil, "nil key")
	return layout.bits(key)
}

// Size returns the length in bytes of key's serialized modulus.
func Size(key *Key) int {
	assert(key != nil, "nil key")
	return rsalib.Size(key)
}

// Import moves the components in c into key.
//
// On success key owns every component in c and the caller must not release
// them. On failure every component not yet held by key has been released;
// components key already took stay with key. key itself is never released
// here. Components key already holds, such as those returned by Export, are
// kept as they are.
func Import(key *Key, c Components) error {
	assert(key != nil, "nil key")
	assert(c.N != nil && c.E != nil, "nil modulus or public exponent")
	c.checkGrouping()

	if err := layout.importKey(key, c); err != nil {
		return &Error{Op: "Import", Err: fmt.Errorf("%w: %s", ErrImport, diagnostic(err))}
	}
	return nil
}

// NewExDataIndex allocates an index under which applications attach their
// own values to keys with SetExData. name labels the index. Free releases
// every index together with the values attached under it.
func NewExDataIndex(name string) int {
	return rsalib.GetExNewIndex(name)
}

// SetExData attaches v to key under idx. It fails when idx was never
// allocated or was released by Free.
func SetExData(key *Key, idx int, v any) error {
	assert(key != nil, "nil key")
	if err := key.SetExData(idx, v); err != nil {
		return &Error{Op: "SetExData", Err: fmt.Errorf("%w: %s", ErrExData, diagnostic(err))}
	}
	return nil
}

// Export returns borrowed references to key's modulus and public exponent
// and, when private is true, to its private components. The values belong to
// key: they must not be released and are only valid while key is alive and
// unchanged. Components key does not hold come back nil.
func Export(key *Key, private bool) Components {
	assert(key != nil, "nil key")
	return layout.exportKey(key, private)
}

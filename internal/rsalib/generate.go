package rsalib

import (
	"github.com/rsacompat/rsacompat-go/internal/failpoint"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

// NewBN allocates a value the way BN_new does: when the allocation fails a
// malloc failure is queued and returned.
func NewBN() (*bn.Int, error) {
	z := bn.New()
	if z == nil {
		return nil, raise(LibBN, FuncBNNew, ReasonMallocFailure)
	}
	return z, nil
}

// GenerateKeyEx fills r with a fresh key pair of the given size and public
// exponent. Components r already holds are released. On failure r is left
// unchanged and the reason is queued.
func GenerateKeyEx(r *RSA, bits int, e *bn.Int) error {
	if r == nil || e == nil {
		return raise(LibRSA, FuncGenerateKeyEx, ReasonPassedNullParameter)
	}
	if failpoint.Hit(failpoint.GenerateKeyEx) {
		return raise(LibRSA, FuncGenerateKeyEx, ReasonInternalError)
	}

	g, err := nativeGenerate(r, bits, e, FuncGenerateKeyEx)
	if err != nil {
		return err
	}
	r.adopt(&g)
	return nil
}

// GenerateKey is the one-shot generator of libraries older than 0.9.8.
func GenerateKey(bits int, e uint64) (*RSA, error) {
	if failpoint.Hit(failpoint.GenerateKeyOld) {
		return nil, raise(LibRSA, FuncGenerateKey, ReasonInternalError)
	}

	exp, err := NewBN()
	if err != nil {
		return nil, err
	}
	defer exp.Free()
	exp.SetWord(e)

	r, err := New()
	if err != nil {
		return nil, err
	}
	g, err := nativeGenerate(r, bits, exp, FuncGenerateKey)
	if err != nil {
		r.Free()
		return nil, err
	}
	r.adopt(&g)
	return r, nil
}

// collect converts generated values into components. On failure the ones
// already converted are released and a BN_new malloc failure is raised.
func collect(vals func(Field) ([]byte, bool)) (generated, error) {
	var g generated
	for f := range g {
		b, ok := vals(Field(f))
		if !ok {
			continue
		}
		z, err := bn.FromBytes(b)
		clear(b)
		if err != nil {
			g.free()
			return generated{}, raise(LibBN, FuncBNNew, ReasonMallocFailure)
		}
		g[f] = z
	}
	return g, nil
}

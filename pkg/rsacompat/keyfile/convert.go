package keyfile

import (
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

// values holds copies of a key's components as big.Int. Private fields are
// nil for public keys.
type values struct {
	n, e, d    *big.Int
	p, q       *big.Int
	dmp1, dmq1 *big.Int
	iqmp       *big.Int
}

func (v *values) private() bool { return v.d != nil }

func readValues(key *rsacompat.Key) *values {
	c := rsacompat.Export(key, true)
	toBig := func(z *bn.Int) *big.Int {
		if z == nil {
			return nil
		}
		return z.Big()
	}
	return &values{
		n: toBig(c.N), e: toBig(c.E), d: toBig(c.D),
		p: toBig(c.P), q: toBig(c.Q),
		dmp1: toBig(c.Dmp1), dmq1: toBig(c.Dmq1), iqmp: toBig(c.Iqmp),
	}
}

func (v *values) publicKey() (*rsa.PublicKey, error) {
	if v.n == nil || v.e == nil {
		return nil, fmt.Errorf("%w: missing modulus or exponent", ErrInconsistent)
	}
	if !v.e.IsInt64() || v.e.Int64() > int64(^uint32(0)>>1) {
		return nil, fmt.Errorf("%w: public exponent out of range", ErrInconsistent)
	}
	return &rsa.PublicKey{N: v.n, E: int(v.e.Int64())}, nil
}

func (v *values) privateKey() (*rsa.PrivateKey, error) {
	if !v.private() {
		return nil, ErrNotPrivate
	}
	pub, err := v.publicKey()
	if err != nil {
		return nil, err
	}
	k := &rsa.PrivateKey{
		PublicKey: *pub,
		D:         v.d,
		Primes:    []*big.Int{v.p, v.q},
	}
	k.Precomputed.Dp = v.dmp1
	k.Precomputed.Dq = v.dmq1
	k.Precomputed.Qinv = v.iqmp
	return k, nil
}

func fromPublic(k *rsa.PublicKey) *values {
	return &values{n: k.N, e: big.NewInt(int64(k.E))}
}

func fromPrivate(k *rsa.PrivateKey) (*values, error) {
	if len(k.Primes) != 2 {
		return nil, fmt.Errorf("%w: %d primes", ErrInconsistent, len(k.Primes))
	}
	k.Precompute()
	return &values{
		n: k.N, e: big.NewInt(int64(k.E)), d: k.D,
		p: k.Primes[0], q: k.Primes[1],
		dmp1: k.Precomputed.Dp, dmq1: k.Precomputed.Dq, iqmp: k.Precomputed.Qinv,
	}, nil
}

// newKey allocates a key and moves v into it. On failure nothing allocated
// here survives.
func (v *values) newKey() (*rsacompat.Key, error) {
	if v.n == nil || v.e == nil {
		return nil, fmt.Errorf("%w: missing modulus or exponent", ErrInconsistent)
	}
	src := []*big.Int{v.n, v.e}
	if v.private() {
		src = append(src, v.d, v.p, v.q, v.dmp1, v.dmq1, v.iqmp)
	}
	for _, x := range src {
		if x == nil {
			return nil, fmt.Errorf("%w: incomplete private components", ErrInconsistent)
		}
	}

	ints := make([]*bn.Int, 0, len(src))
	release := func() {
		for _, z := range ints {
			z.ClearFree()
		}
	}
	for _, x := range src {
		z, err := bn.FromBig(x)
		if err != nil {
			release()
			return nil, err
		}
		ints = append(ints, z)
	}

	key, err := rsacompat.NewKey()
	if err != nil {
		release()
		return nil, err
	}

	c := rsacompat.Components{N: ints[0], E: ints[1]}
	if v.private() {
		c.D, c.P, c.Q = ints[2], ints[3], ints[4]
		c.Dmp1, c.Dmq1, c.Iqmp = ints[5], ints[6], ints[7]
	}
	if err := rsacompat.Import(key, c); err != nil {
		key.Free()
		return nil, err
	}
	return key, nil
}

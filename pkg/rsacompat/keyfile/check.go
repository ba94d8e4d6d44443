package keyfile

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

var one = big.NewInt(1)

// Check verifies that key's private components are consistent with each
// other and with the public half. Every failed relation is reported; the
// result wraps ErrInconsistent once per failure. A key holding d without
// every factor and CRT parameter, as left by a partial import, is
// inconsistent.
func Check(key *rsacompat.Key) error {
	v := readValues(key)
	if !v.private() {
		return ErrNotPrivate
	}
	if v.n == nil || v.e == nil || v.p == nil || v.q == nil || v.dmp1 == nil || v.dmq1 == nil || v.iqmp == nil {
		return fmt.Errorf("%w: incomplete private components", ErrInconsistent)
	}

	var result *multierror.Error
	fail := func(msg string) {
		result = multierror.Append(result, fmt.Errorf("%w: %s", ErrInconsistent, msg))
	}

	if new(big.Int).Mul(v.p, v.q).Cmp(v.n) != 0 {
		fail("p*q does not equal n")
	}

	pm1 := new(big.Int).Sub(v.p, one)
	qm1 := new(big.Int).Sub(v.q, one)
	if pm1.Sign() <= 0 || qm1.Sign() <= 0 {
		fail("prime factor below 2")
		return result.ErrorOrNil()
	}

	gcd := new(big.Int).GCD(nil, nil, pm1, qm1)
	lambda := new(big.Int).Div(new(big.Int).Mul(pm1, qm1), gcd)
	ed := new(big.Int).Mul(v.e, v.d)
	if ed.Mod(ed, lambda).Cmp(one) != 0 {
		fail("e*d is not 1 mod lcm(p-1, q-1)")
	}

	if new(big.Int).Mod(v.d, pm1).Cmp(v.dmp1) != 0 {
		fail("dmp1 does not equal d mod (p-1)")
	}
	if new(big.Int).Mod(v.d, qm1).Cmp(v.dmq1) != 0 {
		fail("dmq1 does not equal d mod (q-1)")
	}

	iq := new(big.Int).Mul(v.iqmp, v.q)
	if iq.Mod(iq, v.p).Cmp(one) != 0 {
		fail("iqmp*q is not 1 mod p")
	}

	return result.ErrorOrNil()
}

//go:build !cgo || windows

package rsalib

import (
	"crypto/rand"
	"crypto/rsa"
	"math/big"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

// minModulusBits is the smallest modulus the prime search accepts.
const minModulusBits = 1024

// supportedExponent is the only public exponent the prime search produces.
const supportedExponent = 65537

func nativeGenerate(_ *RSA, bits int, e *bn.Int, fn int) (generated, error) {
	if bits < minModulusBits {
		return generated{}, raise(LibRSA, fn, ReasonKeySizeTooSmall)
	}
	if !e.IsWord(supportedExponent) {
		return generated{}, raise(LibRSA, fn, ReasonBadEValue)
	}

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return generated{}, raise(LibRSA, fn, ReasonInternalError)
	}
	key.Precompute()

	vals := [numFields]*big.Int{
		FieldN:    key.N,
		FieldE:    big.NewInt(int64(key.E)),
		FieldD:    key.D,
		FieldP:    key.Primes[0],
		FieldQ:    key.Primes[1],
		FieldDmp1: key.Precomputed.Dp,
		FieldDmq1: key.Precomputed.Dq,
		FieldIqmp: key.Precomputed.Qinv,
	}
	g, err := collect(func(f Field) ([]byte, bool) {
		return vals[f].Bytes(), true
	})
	if err != nil {
		return generated{}, err
	}
	addAllAlgorithms()
	return g, nil
}

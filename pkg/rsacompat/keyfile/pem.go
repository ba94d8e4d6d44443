package keyfile

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

const (
	pemPrivateType = "RSA PRIVATE KEY"
	pemPublicType  = "RSA PUBLIC KEY"
)

// EncodePEM encodes key as a PKCS#1 PEM block. Keys holding private
// components produce an "RSA PRIVATE KEY" block, others an "RSA PUBLIC KEY"
// block.
func EncodePEM(key *rsacompat.Key) ([]byte, error) {
	v := readValues(key)
	if v.private() {
		priv, err := v.privateKey()
		if err != nil {
			return nil, err
		}
		return pem.EncodeToMemory(&pem.Block{Type: pemPrivateType, Bytes: x509.MarshalPKCS1PrivateKey(priv)}), nil
	}

	pub, err := v.publicKey()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPublicType, Bytes: x509.MarshalPKCS1PublicKey(pub)}), nil
}

// DecodePEM decodes the first PKCS#1 block in data into a new key.
func DecodePEM(data []byte) (*rsacompat.Key, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block", ErrFormat)
	}

	var v *values
	switch block.Type {
	case pemPrivateType:
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("keyfile: parse private key: %w", err)
		}
		if v, err = fromPrivate(priv); err != nil {
			return nil, err
		}
	case pemPublicType:
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("keyfile: parse public key: %w", err)
		}
		v = fromPublic(pub)
	default:
		return nil, fmt.Errorf("%w: PEM type %q", ErrFormat, block.Type)
	}
	return v.newKey()
}

package keyfile

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

// Document is the YAML form of a key. Components are hexadecimal big-endian
// strings; the private ones are omitted for public keys.
type Document struct {
	Bits int    `yaml:"bits"`
	Size int    `yaml:"size"`
	N    string `yaml:"n"`
	E    string `yaml:"e"`
	D    string `yaml:"d,omitempty"`
	P    string `yaml:"p,omitempty"`
	Q    string `yaml:"q,omitempty"`
	Dmp1 string `yaml:"dmp1,omitempty"`
	Dmq1 string `yaml:"dmq1,omitempty"`
	Iqmp string `yaml:"iqmp,omitempty"`
}

// MarshalYAML dumps key's components as a YAML Document.
func MarshalYAML(key *rsacompat.Key) ([]byte, error) {
	v := readValues(key)
	if v.n == nil || v.e == nil {
		return nil, fmt.Errorf("%w: missing modulus or exponent", ErrInconsistent)
	}
	doc := Document{
		Bits: rsacompat.Bits(key),
		Size: rsacompat.Size(key),
		N:    encodeHex(v.n),
		E:    encodeHex(v.e),
	}
	if v.private() {
		doc.D = encodeHex(v.d)
		doc.P = encodeHex(v.p)
		doc.Q = encodeHex(v.q)
		doc.Dmp1 = encodeHex(v.dmp1)
		doc.Dmq1 = encodeHex(v.dmq1)
		doc.Iqmp = encodeHex(v.iqmp)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("keyfile: marshal yaml: %w", err)
	}
	return out, nil
}

// UnmarshalYAML decodes a YAML Document into a new key. Unknown fields are
// rejected. The bits and size fields are informational and not checked.
func UnmarshalYAML(data []byte) (*rsacompat.Key, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrFormat, err)
	}

	var v values
	fields := []struct {
		name string
		src  string
		dst  **big.Int
	}{
		{"n", doc.N, &v.n},
		{"e", doc.E, &v.e},
		{"d", doc.D, &v.d},
		{"p", doc.P, &v.p},
		{"q", doc.Q, &v.q},
		{"dmp1", doc.Dmp1, &v.dmp1},
		{"dmq1", doc.Dmq1, &v.dmq1},
		{"iqmp", doc.Iqmp, &v.iqmp},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		x, err := decodeHex(f.src)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", ErrFormat, f.name, err)
		}
		*f.dst = x
	}
	if v.d == nil && (v.p != nil || v.q != nil || v.dmp1 != nil || v.dmq1 != nil || v.iqmp != nil) {
		return nil, fmt.Errorf("%w: private components without d", ErrInconsistent)
	}
	return v.newKey()
}

func encodeHex(x *big.Int) string {
	return hex.EncodeToString(x.Bytes())
}

func decodeHex(s string) (*big.Int, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

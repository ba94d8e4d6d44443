package keyfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

// Format names an on-disk key encoding.
type Format string

const (
	FormatPEM  Format = "pem"
	FormatSSH  Format = "ssh"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPEM, FormatSSH, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, name)
	}
}

// Encode renders key in format f. comment applies to FormatSSH only.
func Encode(key *rsacompat.Key, f Format, comment string) ([]byte, error) {
	switch f {
	case FormatPEM:
		return EncodePEM(key)
	case FormatSSH:
		return AuthorizedKey(key, comment)
	case FormatYAML:
		return MarshalYAML(key)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, f)
	}
}

// Detect guesses the encoding of data from its leading bytes.
func Detect(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("-----BEGIN ")):
		return FormatPEM
	case bytes.HasPrefix(trimmed, []byte("ssh-rsa ")):
		return FormatSSH
	default:
		return FormatYAML
	}
}

// Decode parses data in whichever supported encoding it is in.
func Decode(data []byte) (*rsacompat.Key, Format, error) {
	f := Detect(data)
	var (
		key *rsacompat.Key
		err error
	)
	switch f {
	case FormatPEM:
		key, err = DecodePEM(data)
	case FormatSSH:
		key, _, err = DecodeAuthorizedKey(data)
	default:
		key, err = UnmarshalYAML(data)
	}
	return key, f, err
}

// ReadFile reads and decodes the key stored at path.
func ReadFile(path string) (*rsacompat.Key, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("keyfile: read %s: %w", path, err)
	}
	return Decode(data)
}

// WriteFile encodes key in format f and writes it to path, readable by the
// owner only.
func WriteFile(path string, key *rsacompat.Key, f Format, comment string) error {
	data, err := Encode(key, f, comment)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("keyfile: write %s: %w", path, err)
	}
	return nil
}

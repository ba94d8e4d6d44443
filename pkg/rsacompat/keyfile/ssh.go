package keyfile

import (
	"bytes"
	"crypto/rsa"
	"fmt"

	"golang.org/x/crypto/ssh"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

func sshPublicKey(key *rsacompat.Key) (ssh.PublicKey, error) {
	pub, err := readValues(key).publicKey()
	if err != nil {
		return nil, err
	}
	sk, err := ssh.NewPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("keyfile: ssh public key: %w", err)
	}
	return sk, nil
}

// AuthorizedKey renders the public half of key as one authorized_keys line.
// An empty comment falls back to the one attached with SetComment; if there
// is none the comment is omitted.
func AuthorizedKey(key *rsacompat.Key, comment string) ([]byte, error) {
	sk, err := sshPublicKey(key)
	if err != nil {
		return nil, err
	}
	if comment == "" {
		comment = Comment(key)
	}
	line := bytes.TrimSuffix(ssh.MarshalAuthorizedKey(sk), []byte("\n"))
	if comment != "" {
		line = append(line, ' ')
		line = append(line, comment...)
	}
	return append(line, '\n'), nil
}

// Fingerprint returns the OpenSSH SHA256 fingerprint of key's public half.
func Fingerprint(key *rsacompat.Key) (string, error) {
	sk, err := sshPublicKey(key)
	if err != nil {
		return "", err
	}
	return ssh.FingerprintSHA256(sk), nil
}

// DecodeAuthorizedKey parses an authorized_keys line into a new public key
// and returns the line's comment, which is also attached to the key.
func DecodeAuthorizedKey(data []byte) (*rsacompat.Key, string, error) {
	sk, comment, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return nil, "", fmt.Errorf("keyfile: parse authorized key: %w", err)
	}
	ck, ok := sk.(ssh.CryptoPublicKey)
	if !ok {
		return nil, "", fmt.Errorf("%w: ssh key type %s", ErrFormat, sk.Type())
	}
	pub, ok := ck.CryptoPublicKey().(*rsa.PublicKey)
	if !ok {
		return nil, "", fmt.Errorf("%w: ssh key type %s", ErrFormat, sk.Type())
	}
	key, err := fromPublic(pub).newKey()
	if err != nil {
		return nil, "", err
	}
	if comment != "" {
		if err := SetComment(key, comment); err != nil {
			key.Free()
			return nil, "", err
		}
	}
	return key, comment, nil
}

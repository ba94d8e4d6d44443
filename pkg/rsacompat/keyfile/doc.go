// Package keyfile moves rsacompat keys to and from their on-disk forms.
//
// Three encodings are supported:
//
//   - PKCS#1 PEM ("RSA PRIVATE KEY" and "RSA PUBLIC KEY" blocks)
//   - OpenSSH authorized_keys lines, public only
//   - a YAML dump of the raw components in hexadecimal
//
// Decoding always produces a fresh key that the caller owns and releases
// with Free. Check verifies the arithmetic relations between the private
// components of a key.
package keyfile

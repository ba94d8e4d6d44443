// Package rsalib is the crypto library linked into the binary: the RSA key
// object, its key generation primitives, the library error queue and the
// shared tables the library keeps for the life of the process.
//
// With cgo the system libcrypto is linked and its headers decide, at build
// time, which OpenSSL or LibreSSL release is present and therefore which key
// generation applies. Without cgo, or on Windows, the library is emulated in
// Go and build tags pick the release it behaves like:
//
//	(none)                 OpenSSL 3.0      accessor generation
//	rsacompat_openssl10    OpenSSL 1.0.2    direct-field generation
//	rsacompat_openssl098   OpenSSL 0.9.8    direct-field generation
//	rsacompat_openssl097   OpenSSL 0.9.7    direct-field generation
//	rsacompat_libressl     LibreSSL 3.8     accessor generation
//	rsacompat_libressl26   LibreSSL 2.6     direct-field generation
//
// In the direct-field generation components are read and written in place
// with Field and Assign. In the accessor generation they move through the
// Set0 and Get0 methods. Calling the other generation's methods panics.
//
// Nothing in this package is safe for concurrent use on the same RSA value.
// The shared tables are internally locked.
package rsalib

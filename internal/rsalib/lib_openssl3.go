//go:build (!cgo || windows) && !rsacompat_openssl10 && !rsacompat_openssl098 && !rsacompat_openssl097 && !rsacompat_libressl && !rsacompat_libressl26

package rsalib

const (
	openSSLVersionNumber  uint32 = 0x300000d0
	libreSSLVersionNumber uint32 = 0
	libraryVersionText           = "OpenSSL 3.0.13 30 Jan 2024"

	// Layout names the key generation of the emulated release.
	Layout = LayoutAccessor
)

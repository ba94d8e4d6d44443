//go:build (!cgo || windows) && rsacompat_openssl10

package rsalib

const (
	openSSLVersionNumber  uint32 = 0x1000215f
	libreSSLVersionNumber uint32 = 0
	libraryVersionText           = "OpenSSL 1.0.2u  20 Dec 2019"

	// Layout names the key generation of the emulated release.
	Layout = LayoutFields
)

//go:build (!cgo || windows) && rsacompat_openssl098

package rsalib

const (
	openSSLVersionNumber  uint32 = 0x009081ff
	libreSSLVersionNumber uint32 = 0
	libraryVersionText           = "OpenSSL 0.9.8zh 3 Dec 2015"

	// Layout names the key generation of the emulated release.
	Layout = LayoutFields
)

//go:build (!cgo || windows) && rsacompat_openssl097

package rsalib

const (
	openSSLVersionNumber  uint32 = 0x0090703f
	libreSSLVersionNumber uint32 = 0
	libraryVersionText           = "OpenSSL 0.9.7m 23 Feb 2007"

	// Layout names the key generation of the emulated release.
	Layout = LayoutFields
)

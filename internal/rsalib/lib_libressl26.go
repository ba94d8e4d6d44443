//go:build (!cgo || windows) && rsacompat_libressl26

package rsalib

// LibreSSL claims to be OpenSSL 2.0.
const (
	openSSLVersionNumber  uint32 = 0x20000000
	libreSSLVersionNumber uint32 = 0x2060500f
	libraryVersionText           = "LibreSSL 2.6.5"

	// Layout names the key generation of the emulated release.
	Layout = LayoutFields
)

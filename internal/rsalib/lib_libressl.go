//go:build (!cgo || windows) && rsacompat_libressl

package rsalib

// LibreSSL claims to be OpenSSL 2.0.
const (
	openSSLVersionNumber  uint32 = 0x20000000
	libreSSLVersionNumber uint32 = 0x3080200f
	libraryVersionText           = "LibreSSL 3.8.2"

	// Layout names the key generation of the emulated release.
	Layout = LayoutAccessor
)

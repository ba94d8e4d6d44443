package rsalib

// OpenSSL version numbers that change the shape of the API.
const (
	Version098 uint32 = 0x00908000 // RSA_generate_key_ex
	Version100 uint32 = 0x10000000 // ERR_remove_thread_state
	Version110 uint32 = 0x10100000 // opaque RSA, Set0/Get0 accessors
)

// LibreSSL remapping targets.
const (
	libreSSLAccessorRelease uint32 = 0x2070000f // 2.7.0: accessors and EVP_cleanup
	libreSSLAsOpenSSL110    uint32 = 0x1010000f
	libreSSLAsOpenSSL101g   uint32 = 0x1000107f
)

// Key generations.
const (
	LayoutFields   = "direct-field"
	LayoutAccessor = "accessor"
)

var effectiveVersion, needEVPCleanup = remapVersion(openSSLVersionNumber, libreSSLVersionNumber)

// remapVersion turns the raw version numbers reported by the linked library
// into an OpenSSL version number that selects code paths. LibreSSL claims to
// be OpenSSL 2.0; that claim is ignored.
func remapVersion(openssl, libressl uint32) (version uint32, evpCleanup bool) {
	if libressl == 0 {
		return openssl, false
	}
	if libressl >= libreSSLAccessorRelease {
		// EVP_cleanup is documented as a no-op but LibreSSL still keeps
		// the name tables alive until it runs.
		return libreSSLAsOpenSSL110, true
	}
	return libreSSLAsOpenSSL101g, false
}

// VersionNumber returns the OpenSSL-style version number after fork
// remapping.
func VersionNumber() uint32 {
	return effectiveVersion
}

// NeedEVPCleanup reports whether shutdown must run EVPCleanup.
func NeedEVPCleanup() bool {
	return needEVPCleanup
}

// VersionText returns the library's version banner.
func VersionText() string {
	return libraryVersionText
}

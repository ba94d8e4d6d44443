package rsacompat

import "github.com/rsacompat/rsacompat-go/internal/rsalib"

var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// LibraryVersion returns the version banner of the linked crypto library.
func LibraryVersion() string {
	return rsalib.VersionText()
}

// LibraryVersionNumber returns the OpenSSL-style version number used to pick
// code paths. Fork releases are already mapped onto OpenSSL numbering.
func LibraryVersionNumber() uint32 {
	return rsalib.VersionNumber()
}

// Generation names the key access strategy compiled in: "direct-field" or
// "accessor".
func Generation() string {
	return layout.name()
}

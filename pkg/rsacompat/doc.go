// Package rsacompat gives RSA key handling one call surface across the
// generations of the linked crypto library.
//
// The library either exposes the nine RSA components as struct fields or
// hides them behind Set0/Get0 accessors, and its forks renumber their
// releases. Which one is linked is fixed by build tags (see internal/rsalib);
// this package compiles the matching strategy and callers never branch on it.
//
// # Operations
//
//   - ValidSize reports whether a key has exactly a 2048-bit, 256-byte modulus.
//   - Import moves component values into a key. The key owns them afterwards.
//   - Export returns borrowed references to a key's components.
//   - GenerateKey creates a 2048-bit key with public exponent 65537.
//   - Free releases the library's process-wide state at shutdown.
//
// # Ownership
//
//	key, err := rsacompat.NewKey()
//	if err != nil {
//	    return err
//	}
//	defer key.Free()
//
//	// n and e belong to key once Import succeeds; do not free them.
//	if err := rsacompat.Import(key, rsacompat.Components{N: n, E: e}); err != nil {
//	    return err
//	}
//
// If Import fails, the components it had not handed to the key have already
// been released, and the key itself is left to the caller to free.
//
// Arguments that break the calling contract (nil key, nil modulus or
// exponent, a partial set of private components) panic.
//
// # Concurrency
//
// A key must not be used from several goroutines at once. Distinct keys may.
// Free must run once, after every other call into this package has
// returned.
package rsacompat

package rsacompat

import "github.com/rsacompat/rsacompat-go/internal/rsalib"

// Free releases the state the crypto library keeps for the whole process:
// the error queue, the error string tables and its internal caches.
//
// Call it once at shutdown after every other call into this package has
// returned. References handed out by Export are unaffected; they live as
// long as their key.
func Free() {
	switch v := rsalib.VersionNumber(); {
	case v < rsalib.Version100:
		rsalib.ERRRemoveState(0)
	case v < rsalib.Version110:
		rsalib.ERRRemoveThreadState()
	default:
		// The library drops the error queue itself.
	}

	rsalib.ERRFreeStrings()

	if rsalib.NeedEVPCleanup() {
		rsalib.EVPCleanup()
	}

	rsalib.CleanupAllExData()
}

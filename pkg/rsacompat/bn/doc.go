// Package bn provides the arbitrary-precision integer used for RSA key
// components.
//
// An Int is an owned value: whoever holds it is responsible for releasing it
// with Free, or with ClearFree when it carries secret material. Ownership of
// an Int moves into an RSA key when the key absorbs it, after which the key
// releases it.
//
// # Encodings
//
// FromBytes stores the canonical big-endian form. FromBytesPadded keeps any
// leading zero bytes, producing a non-canonical encoding whose EncodedLen
// differs from the length implied by NumBits. Key validation relies on the
// two being checked separately.
//
// # Accounting
//
// Every allocation and release is counted process-wide:
//
//	before := bn.ReadStats()
//	// ... work ...
//	delta := bn.ReadStats().Since(before)
//	if delta.Live() != 0 || delta.DoubleFrees != 0 {
//	    // leak or double release
//	}
//
// No finalizer is installed; an Int that is never released shows up as live.
package bn

package bn

import (
	"errors"
	"math/big"
	"math/bits"
	"runtime"

	"github.com/rsacompat/rsacompat-go/internal/failpoint"
)

var (
	// ErrAlloc reports that the allocator refused a new value.
	ErrAlloc = errors.New("bn: allocation failed")

	// ErrNegative reports an attempt to store a negative value.
	ErrNegative = errors.New("bn: negative value")
)

// Int is a non-negative arbitrary-precision integer stored as big-endian
// bytes. The zero value is not usable; obtain an Int from New or one of the
// From constructors.
type Int struct {
	mag   []byte
	freed bool
}

// New allocates a zero-valued Int. It returns nil when allocation fails.
func New() *Int {
	if failpoint.Hit(failpoint.BNNew) {
		return nil
	}
	countAlloc()
	return &Int{}
}

// FromBig allocates an Int holding x.
func FromBig(x *big.Int) (*Int, error) {
	if x == nil {
		return nil, errors.New("bn: nil value")
	}
	if x.Sign() < 0 {
		return nil, ErrNegative
	}
	z := New()
	if z == nil {
		return nil, ErrAlloc
	}
	z.mag = x.Bytes()
	return z, nil
}

// FromBytes allocates an Int from big-endian bytes, dropping leading zeros.
// The input is copied.
func FromBytes(b []byte) (*Int, error) {
	z := New()
	if z == nil {
		return nil, ErrAlloc
	}
	z.mag = append([]byte(nil), trimLeadingZeros(b)...)
	return z, nil
}

// FromBytesPadded allocates an Int from big-endian bytes, keeping leading
// zero bytes as part of the stored encoding. The input is copied.
func FromBytesPadded(b []byte) (*Int, error) {
	z := New()
	if z == nil {
		return nil, ErrAlloc
	}
	z.mag = append([]byte(nil), b...)
	return z, nil
}

// SetWord sets z to w and returns z.
func (z *Int) SetWord(w uint64) *Int {
	z.mustLive()
	z.wipe()
	z.mag = new(big.Int).SetUint64(w).Bytes()
	return z
}

// Big returns a copy of the value as a big.Int.
func (z *Int) Big() *big.Int {
	z.mustLive()
	return new(big.Int).SetBytes(z.mag)
}

// Bytes returns a copy of the canonical big-endian encoding.
func (z *Int) Bytes() []byte {
	z.mustLive()
	return append([]byte(nil), trimLeadingZeros(z.mag)...)
}

// NumBits returns the bit length of the value, ignoring any leading zero
// bytes in the stored encoding.
func (z *Int) NumBits() int {
	z.mustLive()
	m := trimLeadingZeros(z.mag)
	if len(m) == 0 {
		return 0
	}
	return (len(m)-1)*8 + bits.Len8(m[0])
}

// EncodedLen returns the length in bytes of the stored encoding, including
// leading zero bytes kept by FromBytesPadded.
func (z *Int) EncodedLen() int {
	z.mustLive()
	return len(z.mag)
}

// Cmp compares the values of z and y.
func (z *Int) Cmp(y *Int) int {
	return z.Big().Cmp(y.Big())
}

// IsWord reports whether z equals w.
func (z *Int) IsWord(w uint64) bool {
	v := z.Big()
	return v.IsUint64() && v.Uint64() == w
}

// String returns the decimal form of the value. Released values print as
// "<freed>".
func (z *Int) String() string {
	if z == nil {
		return "<nil>"
	}
	if z.freed {
		return "<freed>"
	}
	return z.Big().String()
}

// Freed reports whether z has been released.
func (z *Int) Freed() bool {
	return z != nil && z.freed
}

// Free releases z. Calling Free on nil is a no-op; calling it on a released
// value is counted as a double free.
func (z *Int) Free() {
	if z == nil {
		return
	}
	if z.freed {
		countDoubleFree()
		return
	}
	z.mag = nil
	z.freed = true
	countFree()
}

// ClearFree zeroizes the stored encoding and releases z.
func (z *Int) ClearFree() {
	if z == nil {
		return
	}
	if z.freed {
		countDoubleFree()
		return
	}
	z.wipe()
	z.freed = true
	countFree()
}

func (z *Int) wipe() {
	for i := range z.mag {
		z.mag[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(z.mag)
	z.mag = nil
}

func (z *Int) mustLive() {
	if z == nil {
		panic("bn: use of nil Int")
	}
	if z.freed {
		panic("bn: use of released Int")
	}
}

func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

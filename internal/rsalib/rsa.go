package rsalib

import (
	"sync/atomic"

	"github.com/rsacompat/rsacompat-go/internal/failpoint"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

var (
	liveKeys atomic.Int64
	nextID   atomic.Uint64
)

// Field names one RSA component.
type Field int

const (
	FieldN Field = iota
	FieldE
	FieldD
	FieldP
	FieldQ
	FieldDmp1
	FieldDmq1
	FieldIqmp

	numFields
)

// secret reports whether the component is private key material.
func (f Field) secret() bool { return f >= FieldD }

func release(f Field, v *bn.Int) {
	if f.secret() {
		v.ClearFree()
	} else {
		v.Free()
	}
}

// RSA is one RSA key. vals holds the components the key owns, in the
// representation handed out by the Get0 methods; h is the library's own key
// object, kept in step with vals.
type RSA struct {
	id    uint64
	freed bool
	h     handle
	vals  [numFields]*bn.Int
}

// New allocates an empty key.
func New() (*RSA, error) {
	if failpoint.Hit(failpoint.RSANew) {
		return nil, raise(LibRSA, FuncRSANew, ReasonMallocFailure)
	}
	h, err := newHandle()
	if err != nil {
		return nil, err
	}
	liveKeys.Add(1)
	return &RSA{id: nextID.Add(1), h: h}, nil
}

// Free releases r together with every component it owns. Public components
// are released with Free, secret ones with ClearFree.
func (r *RSA) Free() {
	if r == nil || r.freed {
		return
	}
	r.freed = true
	r.freeExData()
	r.nativeFree()
	for f, v := range r.vals {
		release(Field(f), v)
		r.vals[f] = nil
	}
	liveKeys.Add(-1)
}

// replace stores v in f and releases the value it displaces, unless that
// value is v itself.
func (r *RSA) replace(f Field, v *bn.Int) {
	if old := r.vals[f]; old != nil && old != v {
		release(f, old)
	}
	r.vals[f] = v
}

func (r *RSA) requireLayout(want string, fn string) {
	if Layout != want {
		panic("rsalib: " + fn + " is not available in " + Layout + " libraries")
	}
}

// Set0Key moves n, e and d into r. A nil argument keeps the current value;
// it is an error for n or e to be nil while r has none. On success r owns
// every non-nil argument and has released the values they replace. On
// failure nothing is taken. Only accessor libraries have it.
func (r *RSA) Set0Key(n, e, d *bn.Int) error {
	return r.set0(failpoint.Set0Key, FuncSet0Key, []Field{FieldN, FieldE, FieldD}, []*bn.Int{n, e, d}, 2)
}

// Set0Factors moves the prime factors p and q into r, with the same rules
// as Set0Key.
func (r *RSA) Set0Factors(p, q *bn.Int) error {
	return r.set0(failpoint.Set0Factors, FuncSet0Factors, []Field{FieldP, FieldQ}, []*bn.Int{p, q}, 2)
}

// Set0CRTParams moves the CRT exponents and coefficient into r, with the
// same rules as Set0Key.
func (r *RSA) Set0CRTParams(dmp1, dmq1, iqmp *bn.Int) error {
	return r.set0(failpoint.Set0CRTParams, FuncSet0CRTParams, []Field{FieldDmp1, FieldDmq1, FieldIqmp}, []*bn.Int{dmp1, dmq1, iqmp}, 3)
}

// set0 is the shared body of the Set0 methods. The first required fields
// must be set after the call.
func (r *RSA) set0(point string, fn int, fields []Field, vals []*bn.Int, required int) error {
	r.requireLayout(LayoutAccessor, funcNames[fn])
	if failpoint.Hit(point) {
		return raise(LibRSA, fn, ReasonMallocFailure)
	}
	for i, f := range fields[:required] {
		if r.vals[f] == nil && vals[i] == nil {
			return raise(LibRSA, fn, ReasonValueMissing)
		}
	}
	if err := r.nativeSet0(fn, vals); err != nil {
		return err
	}
	for i, f := range fields {
		if vals[i] != nil {
			r.replace(f, vals[i])
		}
	}
	return nil
}

// Get0Key returns r's modulus and exponents. The values remain owned by r.
func (r *RSA) Get0Key() (n, e, d *bn.Int) {
	return r.vals[FieldN], r.vals[FieldE], r.vals[FieldD]
}

// Get0Factors returns r's prime factors. The values remain owned by r.
func (r *RSA) Get0Factors() (p, q *bn.Int) {
	return r.vals[FieldP], r.vals[FieldQ]
}

// Get0CRTParams returns r's CRT parameters. The values remain owned by r.
func (r *RSA) Get0CRTParams() (dmp1, dmq1, iqmp *bn.Int) {
	return r.vals[FieldDmp1], r.vals[FieldDmq1], r.vals[FieldIqmp]
}

// Field reads component f directly. The value remains owned by r.
func (r *RSA) Field(f Field) *bn.Int {
	return r.vals[f]
}

// Assign writes component f directly, the way direct-field libraries expose
// their keys. r takes v and releases the value it held before, unless that
// value is v. Assign fails only when the library cannot copy v; v is then
// still the caller's. Only direct-field libraries have it.
func (r *RSA) Assign(f Field, v *bn.Int) error {
	r.requireLayout(LayoutFields, "direct field assignment")
	if r.vals[f] == v {
		return nil
	}
	if err := r.nativeAssign(f, v); err != nil {
		return err
	}
	r.replace(f, v)
	return nil
}

// Bits returns the bit length of r's modulus as the library computes it.
func (r *RSA) Bits() int {
	if r.vals[FieldN] == nil {
		return 0
	}
	return r.nativeBits()
}

// Size returns the length in bytes of r's serialized modulus, or zero when r
// has no modulus.
func Size(r *RSA) int {
	if r.vals[FieldN] == nil {
		return 0
	}
	return r.nativeSize()
}

// LiveKeys returns the number of keys allocated and not yet freed.
func LiveKeys() int64 {
	return liveKeys.Load()
}

// generated holds freshly generated components before a key adopts them.
type generated [numFields]*bn.Int

func (g *generated) free() {
	for f, v := range g {
		release(Field(f), v)
		g[f] = nil
	}
}

func (r *RSA) adopt(g *generated) {
	for f, v := range g {
		r.replace(Field(f), v)
	}
}

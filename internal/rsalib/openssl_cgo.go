//go:build cgo && !windows

package rsalib

/*
#cgo CFLAGS: -Wno-deprecated-declarations
#cgo LDFLAGS: -lcrypto
#include <stdlib.h>
#include <openssl/opensslv.h>
#include <openssl/crypto.h>
#include <openssl/err.h>
#include <openssl/evp.h>
#include <openssl/bn.h>
#include <openssl/rsa.h>

// LibreSSL reports itself as OpenSSL 2.0. Select code paths by the OpenSSL
// release its API matches instead.
#if defined(LIBRESSL_VERSION_NUMBER)
# define RSACOMPAT_LIBRESSL_VERSION LIBRESSL_VERSION_NUMBER
# if LIBRESSL_VERSION_NUMBER >= 0x2070000fL
#  define RSACOMPAT_VERSION 0x1010000fL
# else
#  define RSACOMPAT_VERSION 0x1000107fL
# endif
#else
# define RSACOMPAT_LIBRESSL_VERSION 0L
# define RSACOMPAT_VERSION OPENSSL_VERSION_NUMBER
#endif

#if RSACOMPAT_VERSION < 0x10100000L
# define RSACOMPAT_DIRECT_FIELDS 1
#else
# define RSACOMPAT_DIRECT_FIELDS 0
#endif

#ifndef RSA_R_VALUE_MISSING
# define RSA_R_VALUE_MISSING 147
#endif
#ifndef ERR_R_PASSED_INVALID_ARGUMENT
# define ERR_R_PASSED_INVALID_ARGUMENT ERR_R_PASSED_NULL_PARAMETER
#endif

static unsigned long rsacompat_openssl_version(void) { return OPENSSL_VERSION_NUMBER; }
static unsigned long rsacompat_libressl_version(void) { return RSACOMPAT_LIBRESSL_VERSION; }
static int rsacompat_direct_fields(void) { return RSACOMPAT_DIRECT_FIELDS; }

static const char *rsacompat_version_text(void) {
#if RSACOMPAT_VERSION < 0x10100000L
	return SSLeay_version(SSLEAY_VERSION);
#else
	return OpenSSL_version(OPENSSL_VERSION);
#endif
}

static void rsacompat_load(void) {
#if RSACOMPAT_VERSION < 0x10100000L
	ERR_load_crypto_strings();
	OpenSSL_add_all_algorithms();
#endif
}

// The error queue is per thread. Everything that reads it back after a
// failure does so inside the same call.
static unsigned long rsacompat_new_error(unsigned long before) {
	unsigned long last = ERR_peek_last_error();
	return last != before ? last : 0;
}

static unsigned long rsacompat_raise(int lib, int func, int reason) {
#if !defined(LIBRESSL_VERSION_NUMBER) && OPENSSL_VERSION_NUMBER >= 0x30000000L
	(void)func;
	ERR_raise(lib, reason);
#else
	ERR_put_error(lib, func, reason, __FILE__, __LINE__);
#endif
	return ERR_peek_last_error();
}

static RSA *rsacompat_new(unsigned long *err) {
	unsigned long before = ERR_peek_last_error();
	RSA *r = RSA_new();
	if (r == NULL)
		*err = rsacompat_new_error(before);
	return r;
}

static BIGNUM *rsacompat_bn_from(const unsigned char *buf, int len, unsigned long *err) {
	unsigned long before = ERR_peek_last_error();
	BIGNUM *v = BN_bin2bn(buf, len, NULL);
	if (v == NULL)
		*err = rsacompat_new_error(before);
	return v;
}

static int rsacompat_bn_num_bytes(const BIGNUM *v) { return BN_num_bytes(v); }

#if RSACOMPAT_DIRECT_FIELDS

static int rsacompat_set0_key(RSA *r, BIGNUM *n, BIGNUM *e, BIGNUM *d) { return 0; }
static int rsacompat_set0_factors(RSA *r, BIGNUM *p, BIGNUM *q) { return 0; }
static int rsacompat_set0_crt_params(RSA *r, BIGNUM *dmp1, BIGNUM *dmq1, BIGNUM *iqmp) { return 0; }

static BIGNUM **rsacompat_slot(RSA *r, int f) {
	switch (f) {
	case 0: return &r->n;
	case 1: return &r->e;
	case 2: return &r->d;
	case 3: return &r->p;
	case 4: return &r->q;
	case 5: return &r->dmp1;
	case 6: return &r->dmq1;
	case 7: return &r->iqmp;
	}
	return NULL;
}

static void rsacompat_assign(RSA *r, int f, BIGNUM *v) {
	BIGNUM **slot = rsacompat_slot(r, f);
	if (slot == NULL) {
		BN_clear_free(v);
		return;
	}
	BN_clear_free(*slot);
	*slot = v;
}

static const BIGNUM *rsacompat_get(RSA *r, int f) {
	BIGNUM **slot = rsacompat_slot(r, f);
	return slot != NULL ? *slot : NULL;
}

static int rsacompat_bits(const RSA *r) {
	return r->n != NULL ? BN_num_bits(r->n) : 0;
}

#else

static int rsacompat_set0_key(RSA *r, BIGNUM *n, BIGNUM *e, BIGNUM *d) {
	return RSA_set0_key(r, n, e, d);
}

static int rsacompat_set0_factors(RSA *r, BIGNUM *p, BIGNUM *q) {
	return RSA_set0_factors(r, p, q);
}

static int rsacompat_set0_crt_params(RSA *r, BIGNUM *dmp1, BIGNUM *dmq1, BIGNUM *iqmp) {
	return RSA_set0_crt_params(r, dmp1, dmq1, iqmp);
}

static void rsacompat_assign(RSA *r, int f, BIGNUM *v) {
	(void)r;
	(void)f;
	BN_clear_free(v);
}

static const BIGNUM *rsacompat_get(RSA *r, int f) {
	const BIGNUM *v[3] = {NULL, NULL, NULL};
	switch (f) {
	case 0: case 1: case 2:
		RSA_get0_key(r, &v[0], &v[1], &v[2]);
		return v[f];
	case 3: case 4:
		RSA_get0_factors(r, &v[0], &v[1]);
		return v[f - 3];
	case 5: case 6: case 7:
		RSA_get0_crt_params(r, &v[0], &v[1], &v[2]);
		return v[f - 5];
	}
	return NULL;
}

static int rsacompat_bits(const RSA *r) {
	const BIGNUM *n = NULL;
	RSA_get0_key(r, &n, NULL, NULL);
	if (n == NULL)
		return 0;
#if defined(LIBRESSL_VERSION_NUMBER)
	return BN_num_bits(n);
#else
	return RSA_bits(r);
#endif
}

#endif

static RSA *rsacompat_generate(int bits, BIGNUM *e, unsigned long *err) {
	unsigned long before = ERR_peek_last_error();
	RSA *r;
#if RSACOMPAT_VERSION < 0x00908000L
	r = RSA_generate_key(bits, BN_get_word(e), NULL, NULL);
#else
	r = RSA_new();
	if (r != NULL && !RSA_generate_key_ex(r, bits, e, NULL)) {
		RSA_free(r);
		r = NULL;
	}
#endif
	if (r == NULL)
		*err = rsacompat_new_error(before);
	return r;
}

static int rsacompat_ex_new_index(void) {
	return RSA_get_ex_new_index(0, NULL, NULL, NULL, NULL);
}

static void rsacompat_err_remove_state(unsigned long pid) {
#if RSACOMPAT_VERSION < 0x10000000L
	ERR_remove_state(pid);
#else
	(void)pid;
#endif
}

static void rsacompat_err_remove_thread_state(void) {
#if RSACOMPAT_VERSION >= 0x10000000L && RSACOMPAT_VERSION < 0x10100000L
	ERR_remove_thread_state(NULL);
#endif
}

static void rsacompat_err_free_strings(void) {
#if RSACOMPAT_VERSION < 0x10100000L || defined(LIBRESSL_VERSION_NUMBER)
	ERR_free_strings();
#endif
}

static void rsacompat_evp_cleanup(void) {
#if RSACOMPAT_VERSION < 0x10100000L || defined(LIBRESSL_VERSION_NUMBER)
	EVP_cleanup();
#endif
}

static void rsacompat_cleanup_all_ex_data(void) {
#if RSACOMPAT_VERSION < 0x10100000L || defined(LIBRESSL_VERSION_NUMBER)
	CRYPTO_cleanup_all_ex_data();
#endif
}
*/
import "C"

import (
	"sync/atomic"
	"unsafe"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

// Native reports whether the system crypto library is linked in.
const Native = true

// Library identifiers.
const (
	LibBN  = C.ERR_LIB_BN
	LibRSA = C.ERR_LIB_RSA
	LibEVP = C.ERR_LIB_EVP
)

// Reason identifiers.
const (
	ReasonMallocFailure       = C.ERR_R_MALLOC_FAILURE
	ReasonPassedNullParameter = C.ERR_R_PASSED_NULL_PARAMETER
	ReasonInternalError       = C.ERR_R_INTERNAL_ERROR
	ReasonValueMissing        = C.RSA_R_VALUE_MISSING
	ReasonBadIndex            = C.ERR_R_PASSED_INVALID_ARGUMENT
)

var (
	openSSLVersionNumber  = uint32(C.rsacompat_openssl_version())
	libreSSLVersionNumber = uint32(C.rsacompat_libressl_version())
	libraryVersionText    = C.GoString(C.rsacompat_version_text())
)

// Layout names the key generation the library headers declare.
var Layout = func() string {
	if C.rsacompat_direct_fields() != 0 {
		return LayoutFields
	}
	return LayoutAccessor
}()

// loaded tracks whether the error strings and algorithm tables of pre-1.1.0
// libraries are loaded. Later releases load them on demand.
var loaded atomic.Bool

func ensureLoaded() {
	if !loaded.Load() {
		C.rsacompat_load()
		loaded.Store(true)
	}
}

// PutError pushes an error onto the calling thread's queue.
func PutError(lib, fn, reason int) {
	C.rsacompat_raise(C.int(lib), C.int(fn), C.int(reason))
}

// GetError removes and returns the oldest queued error, or zero when the
// queue is empty.
func GetError() Code { return Code(C.ERR_get_error()) }

// PeekError returns the oldest queued error without removing it.
func PeekError() Code { return Code(C.ERR_peek_error()) }

// PeekLastError returns the newest queued error without removing it.
func PeekLastError() Code { return Code(C.ERR_peek_last_error()) }

// ClearError empties the queue.
func ClearError() { C.ERR_clear_error() }

// ErrorString renders c the way the library prints errors.
func ErrorString(c Code) string {
	ensureLoaded()
	var buf [256]C.char
	C.ERR_error_string_n(C.ulong(c), &buf[0], C.size_t(len(buf)))
	return C.GoString(&buf[0])
}

// ERRRemoveState drops the error state of the given thread id. Only
// libraries older than 1.0.0 have it.
func ERRRemoveState(pid uint64) {
	C.rsacompat_err_remove_state(C.ulong(pid))
}

// ERRRemoveThreadState drops the calling thread's error state. Only 1.0.x
// libraries have it.
func ERRRemoveThreadState() {
	C.rsacompat_err_remove_thread_state()
}

// ERRFreeStrings releases the error string tables.
func ERRFreeStrings() {
	C.rsacompat_err_free_strings()
	loaded.Store(false)
}

// EVPCleanup releases the EVP name tables.
func EVPCleanup() {
	C.rsacompat_evp_cleanup()
	loaded.Store(false)
}

func raise(lib, fn, reason int) error {
	return &LibError{Code: Code(C.rsacompat_raise(C.int(lib), C.int(fn), C.int(reason)))}
}

func queueState(s *TableState) {
	if C.ERR_peek_error() != 0 {
		s.QueuedErrors = 1
	}
	s.StringsLoaded = loaded.Load()
}

func evpNameCount() int { return 0 }

func nativeExNewIndex() int {
	return int(C.rsacompat_ex_new_index())
}

func nativeCleanupExData() {
	C.rsacompat_cleanup_all_ex_data()
}

type handle struct {
	ptr *C.RSA
}

func newHandle() (handle, error) {
	ensureLoaded()
	var code C.ulong
	p := C.rsacompat_new(&code)
	if p == nil {
		return handle{}, failure(Code(code), LibRSA, FuncRSANew, ReasonMallocFailure)
	}
	return handle{ptr: p}, nil
}

func (r *RSA) nativeFree() {
	C.RSA_free(r.h.ptr)
	r.h.ptr = nil
}

// toBIGNUM copies z into a new library value. nil maps to NULL.
func toBIGNUM(z *bn.Int) (*C.BIGNUM, error) {
	if z == nil {
		return nil, nil
	}
	b := z.Bytes()
	defer clear(b)

	var p *C.uchar
	if len(b) > 0 {
		p = (*C.uchar)(unsafe.Pointer(&b[0]))
	}
	var code C.ulong
	v := C.rsacompat_bn_from(p, C.int(len(b)), &code)
	if v == nil {
		return nil, failure(Code(code), LibBN, FuncBNNew, ReasonMallocFailure)
	}
	return v, nil
}

func clearFreeBIGNUMs(vals []*C.BIGNUM) {
	for _, v := range vals {
		if v != nil {
			C.BN_clear_free(v)
		}
	}
}

func (r *RSA) nativeSet0(fn int, vals []*bn.Int) error {
	var v [3]*C.BIGNUM
	for i, z := range vals {
		x, err := toBIGNUM(z)
		if err != nil {
			clearFreeBIGNUMs(v[:i])
			return err
		}
		v[i] = x
	}

	var ok C.int
	switch fn {
	case FuncSet0Key:
		ok = C.rsacompat_set0_key(r.h.ptr, v[0], v[1], v[2])
	case FuncSet0Factors:
		ok = C.rsacompat_set0_factors(r.h.ptr, v[0], v[1])
	case FuncSet0CRTParams:
		ok = C.rsacompat_set0_crt_params(r.h.ptr, v[0], v[1], v[2])
	}
	if ok == 0 {
		clearFreeBIGNUMs(v[:])
		return raise(LibRSA, fn, ReasonValueMissing)
	}
	return nil
}

func (r *RSA) nativeAssign(f Field, v *bn.Int) error {
	x, err := toBIGNUM(v)
	if err != nil {
		return err
	}
	C.rsacompat_assign(r.h.ptr, C.int(f), x)
	return nil
}

func (r *RSA) nativeBits() int {
	return int(C.rsacompat_bits(r.h.ptr))
}

func (r *RSA) nativeSize() int {
	return int(C.RSA_size(r.h.ptr))
}

// nativeGenerate builds the key pair in a fresh library key and swaps it in
// for r's only once every component has been read back, so a failure leaves
// r as it was.
func nativeGenerate(r *RSA, bits int, e *bn.Int, fn int) (generated, error) {
	x, err := toBIGNUM(e)
	if err != nil {
		return generated{}, err
	}
	defer C.BN_free(x)

	var code C.ulong
	p := C.rsacompat_generate(C.int(bits), x, &code)
	if p == nil {
		return generated{}, failure(Code(code), LibRSA, fn, ReasonInternalError)
	}

	g, err := collect(func(f Field) ([]byte, bool) {
		v := C.rsacompat_get(p, C.int(f))
		if v == nil {
			return nil, false
		}
		b := make([]byte, int(C.rsacompat_bn_num_bytes(v)))
		if len(b) > 0 {
			C.BN_bn2bin(v, (*C.uchar)(unsafe.Pointer(&b[0])))
		}
		return b, true
	})
	if err != nil {
		C.RSA_free(p)
		return generated{}, err
	}

	C.RSA_free(r.h.ptr)
	r.h.ptr = p
	return g, nil
}

//go:build !cgo || windows

package rsalib

import (
	"strconv"
	"strings"
	"sync"
)

// Library identifiers.
const (
	LibBN  = 3
	LibRSA = 4
	LibEVP = 6
)

// Reason identifiers.
const (
	ReasonMallocFailure = 65 + iota
	ReasonPassedNullParameter
	ReasonValueMissing
	ReasonBadEValue
	ReasonKeySizeTooSmall
	ReasonInternalError
	ReasonBadIndex
)

// maxQueued matches the depth of the library's per-thread error ring.
const maxQueued = 16

// PackError builds a Code: library in the top byte, function in the next
// twelve bits, reason in the low twelve bits.
func PackError(lib, fn, reason int) Code {
	return Code(uint32(lib&0xff)<<24 | uint32(fn&0xfff)<<12 | uint32(reason&0xfff))
}

// Lib returns the library part of c.
func (c Code) Lib() int { return int(c>>24) & 0xff }

// Func returns the function part of c.
func (c Code) Func() int { return int(c>>12) & 0xfff }

// Reason returns the reason part of c.
func (c Code) Reason() int { return int(c) & 0xfff }

var (
	errMu        sync.Mutex
	errQueue     []Code
	errStrings   *stringTables
	stringsLoads int
)

type stringTables struct {
	libs    map[int]string
	funcs   map[int]string
	reasons map[int]string
}

func loadStringTables() *stringTables {
	return &stringTables{
		libs: map[int]string{
			LibBN:  "bignum routines",
			LibRSA: "rsa routines",
			LibEVP: "digital envelope routines",
		},
		funcs: funcNames,
		reasons: map[int]string{
			ReasonMallocFailure:       "malloc failure",
			ReasonPassedNullParameter: "passed a null parameter",
			ReasonValueMissing:        "value missing",
			ReasonBadEValue:           "bad e value",
			ReasonKeySizeTooSmall:     "key size too small",
			ReasonInternalError:       "internal error",
			ReasonBadIndex:            "bad index",
		},
	}
}

// PutError appends an error to the queue, dropping the oldest entry when the
// queue is full.
func PutError(lib, fn, reason int) {
	errMu.Lock()
	defer errMu.Unlock()

	if len(errQueue) == maxQueued {
		errQueue = errQueue[1:]
	}
	errQueue = append(errQueue, PackError(lib, fn, reason))
}

// GetError removes and returns the oldest queued error, or zero when the
// queue is empty.
func GetError() Code {
	errMu.Lock()
	defer errMu.Unlock()

	if len(errQueue) == 0 {
		return 0
	}
	c := errQueue[0]
	errQueue = errQueue[1:]
	return c
}

// PeekError returns the oldest queued error without removing it.
func PeekError() Code {
	errMu.Lock()
	defer errMu.Unlock()

	if len(errQueue) == 0 {
		return 0
	}
	return errQueue[0]
}

// PeekLastError returns the newest queued error without removing it.
func PeekLastError() Code {
	errMu.Lock()
	defer errMu.Unlock()

	if len(errQueue) == 0 {
		return 0
	}
	return errQueue[len(errQueue)-1]
}

// ClearError empties the queue.
func ClearError() {
	errMu.Lock()
	errQueue = nil
	errMu.Unlock()
}

// ErrorString renders c as "error:CODE:library:function:reason". The string
// tables are loaded on first use; after ERRFreeStrings they are loaded again
// by the next call.
func ErrorString(c Code) string {
	errMu.Lock()
	defer errMu.Unlock()

	if errStrings == nil {
		errStrings = loadStringTables()
		stringsLoads++
	}
	return formatCode(c, errStrings)
}

func formatCode(c Code, t *stringTables) string {
	lib := t.libs[c.Lib()]
	if lib == "" {
		lib = "lib(" + strconv.Itoa(c.Lib()) + ")"
	}
	fn := t.funcs[c.Func()]
	if fn == "" {
		fn = "func(" + strconv.Itoa(c.Func()) + ")"
	}
	reason := t.reasons[c.Reason()]
	if reason == "" {
		reason = "reason(" + strconv.Itoa(c.Reason()) + ")"
	}

	hex := strings.ToUpper(strconv.FormatUint(uint64(c), 16))
	if n := 8 - len(hex); n > 0 {
		hex = strings.Repeat("0", n) + hex
	}
	return "error:" + hex + ":" + lib + ":" + fn + ":" + reason
}

// ERRRemoveState drops the error state of the given thread id. Threads are
// not tracked separately, so every id clears the shared queue.
func ERRRemoveState(pid uint64) {
	_ = pid
	ClearError()
}

// ERRRemoveThreadState drops the calling thread's error state.
func ERRRemoveThreadState() {
	ClearError()
}

// ERRFreeStrings releases the error string tables.
func ERRFreeStrings() {
	errMu.Lock()
	errStrings = nil
	errMu.Unlock()
}

func raise(lib, fn, reason int) error {
	PutError(lib, fn, reason)
	return &LibError{Code: PackError(lib, fn, reason)}
}

func queueState(s *TableState) {
	errMu.Lock()
	s.QueuedErrors = len(errQueue)
	s.StringsLoaded = errStrings != nil
	s.StringLoads = stringsLoads
	errMu.Unlock()
}

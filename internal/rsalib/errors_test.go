package rsalib

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaiseReturnsQueuedEntry(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	ClearError()
	defer ClearError()

	err := raise(LibRSA, FuncSet0Factors, ReasonValueMissing)
	var le *LibError
	require.ErrorAs(t, err, &le)
	assert.NotZero(t, le.Code)
	assert.Equal(t, le.Code, PeekLastError())
	assert.Equal(t, le.Code, GetError())
	assert.Zero(t, GetError())
	assert.Contains(t, err.Error(), "value missing")
}

func TestQueueOrder(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	ClearError()
	defer ClearError()

	first := raise(LibBN, FuncBNNew, ReasonMallocFailure).(*LibError).Code
	last := raise(LibRSA, FuncGenerateKeyEx, ReasonInternalError).(*LibError).Code

	assert.Equal(t, first, PeekError())
	assert.Equal(t, last, PeekLastError())
	assert.Equal(t, first, GetError())
	assert.Equal(t, last, GetError())
	assert.Zero(t, PeekError())
}

func TestFailurePrefersLibraryCode(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	ClearError()
	defer ClearError()

	queued := raise(LibBN, FuncBNNew, ReasonMallocFailure).(*LibError).Code
	err := failure(queued, LibRSA, FuncRSANew, ReasonInternalError)
	assert.Equal(t, queued, err.(*LibError).Code)

	err = failure(0, LibRSA, FuncRSANew, ReasonInternalError)
	assert.Contains(t, err.Error(), "internal error")
}

func TestErrorStringNamesReason(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer ClearError()

	err := raise(LibBN, FuncBNNew, ReasonMallocFailure)
	assert.Regexp(t, `^error:[0-9A-F]{8}:`, err.Error())
	assert.Contains(t, err.Error(), "malloc failure")
	assert.Contains(t, err.Error(), "bignum routines")
}

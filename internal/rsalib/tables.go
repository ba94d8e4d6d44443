package rsalib

import (
	"strconv"
	"strings"

	cache "github.com/pmylund/go-cache"
)

// Application data attached to keys, and the class names of the ex-data
// indexes handed out for it. Go values cannot live in library memory, so
// the data stays on this side under the key's id; the indexes come from the
// library. Entries live until the key is freed or CleanupAllExData runs.
var exData = cache.New(cache.NoExpiration, 0)

// GetExNewIndex allocates a new ex-data index for RSA keys. name labels the
// index for diagnostics. It returns -1 when the library has no index left.
func GetExNewIndex(name string) int {
	idx := nativeExNewIndex()
	if idx < 0 {
		return -1
	}
	exData.Set(classKey(idx), name, cache.NoExpiration)
	return idx
}

// SetExData attaches v to r under idx.
func (r *RSA) SetExData(idx int, v any) error {
	if _, ok := exData.Get(classKey(idx)); !ok {
		return raise(LibRSA, FuncSetExData, ReasonBadIndex)
	}
	exData.Set(r.exKey(idx), v, cache.NoExpiration)
	return nil
}

// ExData returns the value attached to r under idx, or nil.
func (r *RSA) ExData(idx int) any {
	v, ok := exData.Get(r.exKey(idx))
	if !ok {
		return nil
	}
	return v
}

func (r *RSA) freeExData() {
	prefix := "rsa:" + strconv.FormatUint(r.id, 10) + ":"
	for k := range exData.Items() {
		if strings.HasPrefix(k, prefix) {
			exData.Delete(k)
		}
	}
}

func (r *RSA) exKey(idx int) string {
	return "rsa:" + strconv.FormatUint(r.id, 10) + ":" + strconv.Itoa(idx)
}

func classKey(idx int) string {
	return "class:" + strconv.Itoa(idx)
}

// CleanupAllExData releases every ex-data class and any data still attached
// to keys.
func CleanupAllExData() {
	exData.Flush()
	nativeCleanupExData()
}

// TableState describes the shared state the library currently holds. The
// system library only reports whether its error queue is empty, so there
// QueuedErrors is 0 or 1 and StringLoads and EVPNames stay zero.
type TableState struct {
	QueuedErrors  int
	StringsLoaded bool
	StringLoads   int
	ExDataEntries int
	EVPNames      int
	LiveKeys      int64
}

// State reports the shared state held by the library.
func State() TableState {
	var s TableState
	queueState(&s)
	s.ExDataEntries = exData.ItemCount()
	s.EVPNames = evpNameCount()
	s.LiveKeys = liveKeys.Load()
	return s
}

//go:build !cgo || windows

package rsalib

import (
	"sync"

	cache "github.com/pmylund/go-cache"
)

var (
	evpNames = cache.New(cache.NoExpiration, 0)

	exIndexMu sync.Mutex
	exIndex   int
)

var defaultDigests = []string{"MD5", "SHA1", "SHA224", "SHA256", "SHA384", "SHA512"}

// addAllAlgorithms registers the built-in digest names unless they are
// already present.
func addAllAlgorithms() {
	if evpNames.ItemCount() > 0 {
		return
	}
	for _, name := range defaultDigests {
		evpNames.Set("digest:"+name, name, cache.NoExpiration)
	}
}

func evpNameCount() int {
	return evpNames.ItemCount()
}

// EVPCleanup releases the EVP name table.
func EVPCleanup() {
	evpNames.Flush()
}

func nativeExNewIndex() int {
	exIndexMu.Lock()
	defer exIndexMu.Unlock()
	exIndex++
	return exIndex
}

func nativeCleanupExData() {
	exIndexMu.Lock()
	exIndex = 0
	exIndexMu.Unlock()
}

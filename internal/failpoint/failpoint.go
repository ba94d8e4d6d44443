// Package failpoint provides named fault-injection switches for the emulated
// crypto library. Library primitives call Hit with their name; tests arm a
// point with Enable so the primitive reports failure instead of running.
package failpoint

import "sync"

// Names of the points consulted by the library.
const (
	BNNew          = "bn.new"
	RSANew         = "rsa.new"
	Set0Key        = "rsa.set0_key"
	Set0Factors    = "rsa.set0_factors"
	Set0CRTParams  = "rsa.set0_crt_params"
	GenerateKeyEx  = "rsa.generate_key_ex"
	GenerateKeyOld = "rsa.generate_key"
)

type point struct {
	skip  int // calls to let through before firing
	count int // remaining firings; <0 fires forever
}

var (
	mu     sync.Mutex
	points = map[string]*point{}
)

// Enable arms name so that it fires on every call.
func Enable(name string) {
	EnableAfter(name, 0, -1)
}

// EnableAfter arms name so that the first skip calls pass and the following
// count calls fire. A negative count fires forever.
func EnableAfter(name string, skip, count int) {
	mu.Lock()
	points[name] = &point{skip: skip, count: count}
	mu.Unlock()
}

// Disable disarms name.
func Disable(name string) {
	mu.Lock()
	delete(points, name)
	mu.Unlock()
}

// Reset disarms every point.
func Reset() {
	mu.Lock()
	points = map[string]*point{}
	mu.Unlock()
}

// Hit reports whether the named point fires for this call.
func Hit(name string) bool {
	mu.Lock()
	defer mu.Unlock()

	p, ok := points[name]
	if !ok {
		return false
	}
	if p.skip > 0 {
		p.skip--
		return false
	}
	if p.count == 0 {
		delete(points, name)
		return false
	}
	if p.count > 0 {
		p.count--
	}
	return true
}

package rsacompat_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/logging"
)

var (
	fixtureOnce sync.Once
	fixtureKey  *rsa.PrivateKey
	fixtureErr  error
)

// stdKey returns a 2048-bit key generated once per test binary.
func stdKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	fixtureOnce.Do(func() {
		fixtureKey, fixtureErr = rsa.GenerateKey(rand.Reader, 2048)
		if fixtureErr == nil {
			fixtureKey.Precompute()
		}
	})
	require.NoError(t, fixtureErr)
	return fixtureKey
}

func newInt(t *testing.T, v *big.Int) *bn.Int {
	t.Helper()
	z, err := bn.FromBig(v)
	require.NoError(t, err)
	return z
}

func privateComponents(t *testing.T, k *rsa.PrivateKey) rsacompat.Components {
	t.Helper()
	return rsacompat.Components{
		N:    newInt(t, k.N),
		E:    newInt(t, big.NewInt(int64(k.E))),
		D:    newInt(t, k.D),
		P:    newInt(t, k.Primes[0]),
		Q:    newInt(t, k.Primes[1]),
		Dmp1: newInt(t, k.Precomputed.Dp),
		Dmq1: newInt(t, k.Precomputed.Dq),
		Iqmp: newInt(t, k.Precomputed.Qinv),
	}
}

func publicComponents(t *testing.T, n *big.Int) rsacompat.Components {
	t.Helper()
	return rsacompat.Components{
		N: newInt(t, n),
		E: newInt(t, big.NewInt(rsacompat.PublicExponent)),
	}
}

func freeAll(c rsacompat.Components) {
	c.N.Free()
	c.E.Free()
	for _, v := range []*bn.Int{c.D, c.P, c.Q, c.Dmp1, c.Dmq1, c.Iqmp} {
		v.ClearFree()
	}
}

func newKey(t *testing.T) *rsacompat.Key {
	t.Helper()
	key, err := rsacompat.NewKey()
	require.NoError(t, err)
	return key
}

// pow2plus1 returns 2^exp + 1.
func pow2plus1(exp uint) *big.Int {
	v := new(big.Int).Lsh(big.NewInt(1), exp)
	return v.Add(v, big.NewInt(1))
}

type recordingLogger struct {
	mu      sync.Mutex
	records []string
}

func (r *recordingLogger) add(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, fmt.Sprint(level, " ", msg, " ", args))
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	r.add("DEBUG", msg, args)
}

func (r *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	r.add("INFO", msg, args)
}

func (r *recordingLogger) Warn(_ context.Context, msg string, args ...any) {
	r.add("WARN", msg, args)
}

func (r *recordingLogger) Error(_ context.Context, msg string, args ...any) {
	r.add("ERROR", msg, args)
}

func (r *recordingLogger) With(...any) logging.Logger { return r }

func (r *recordingLogger) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.records...)
}

func useRecorder(t *testing.T) *recordingLogger {
	t.Helper()
	rec := &recordingLogger{}
	rsacompat.SetLogger(rec)
	t.Cleanup(func() { rsacompat.SetLogger(nil) })
	return rec
}

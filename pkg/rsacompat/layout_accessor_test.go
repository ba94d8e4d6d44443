package rsacompat_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsacompat/rsacompat-go/internal/failpoint"
	"github.com/rsacompat/rsacompat-go/internal/rsalib"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/bn"
)

func skipUnlessGeneration(t *testing.T, want string) {
	t.Helper()
	if got := rsacompat.Generation(); got != want {
		t.Skipf("linked library uses the %s generation", got)
	}
}

func TestImportStageFailureReleasesOnce(t *testing.T) {
	skipUnlessGeneration(t, "accessor")

	tests := []struct {
		point   string
		stage   string
		private bool
		// kept reports which exported values survive on the key.
		kept func(c rsacompat.Components) []*bn.Int
		lost func(c rsacompat.Components) []*bn.Int
	}{
		{
			point:   failpoint.Set0Key,
			stage:   "RSA_set0_key",
			private: true,
			lost: func(c rsacompat.Components) []*bn.Int {
				return []*bn.Int{c.N, c.E, c.D, c.P, c.Q, c.Dmp1, c.Dmq1, c.Iqmp}
			},
		},
		{
			point:   failpoint.Set0Key,
			stage:   "RSA_set0_key",
			private: false,
			lost:    func(c rsacompat.Components) []*bn.Int { return []*bn.Int{c.N, c.E} },
		},
		{
			point:   failpoint.Set0Factors,
			stage:   "RSA_set0_factors",
			private: true,
			kept:    func(c rsacompat.Components) []*bn.Int { return []*bn.Int{c.N, c.E, c.D} },
			lost: func(c rsacompat.Components) []*bn.Int {
				return []*bn.Int{c.P, c.Q, c.Dmp1, c.Dmq1, c.Iqmp}
			},
		},
		{
			point:   failpoint.Set0CRTParams,
			stage:   "RSA_set0_crt_params",
			private: true,
			kept: func(c rsacompat.Components) []*bn.Int {
				return []*bn.Int{c.N, c.E, c.D, c.P, c.Q}
			},
			lost: func(c rsacompat.Components) []*bn.Int { return []*bn.Int{c.Dmp1, c.Dmq1, c.Iqmp} },
		},
	}

	std := stdKey(t)
	for _, tt := range tests {
		name := tt.stage
		if !tt.private {
			name += "/public"
		}
		t.Run(name, func(t *testing.T) {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			t.Cleanup(failpoint.Reset)
			rsalib.ClearError()
			base := bn.ReadStats()

			key := newKey(t)
			c := publicComponents(t, std.N)
			if tt.private {
				freeAll(c)
				c = privateComponents(t, std)
			}

			failpoint.Enable(tt.point)
			err := rsacompat.Import(key, c)
			failpoint.Reset()

			require.Error(t, err)
			assert.ErrorIs(t, err, rsacompat.ErrImport)
			assert.Contains(t, err.Error(), tt.stage)
			assert.Contains(t, err.Error(), "malloc failure")
			assert.Zero(t, rsalib.PeekError())

			for _, v := range tt.lost(c) {
				assert.True(t, v.Freed(), "uncommitted component still live")
			}
			if tt.kept != nil {
				for _, v := range tt.kept(c) {
					assert.False(t, v.Freed(), "committed component released early")
				}
				got := rsacompat.Export(key, true)
				assert.Same(t, c.N, got.N)
				assert.Nil(t, got.Iqmp)
			}

			key.Free()
			delta := bn.ReadStats().Since(base)
			assert.Zero(t, delta.Live(), "leaked components")
			assert.Zero(t, delta.DoubleFrees, "double release")
		})
	}
}

// A failed re-import must release only what the key did not already hold.
func TestImportStageFailureKeepsHeldValues(t *testing.T) {
	skipUnlessGeneration(t, "accessor")
	t.Cleanup(failpoint.Reset)
	base := bn.ReadStats()

	key := newKey(t)
	c := privateComponents(t, stdKey(t))
	require.NoError(t, rsacompat.Import(key, c))

	fresh := newInt(t, stdKey(t).Primes[0])
	again := rsacompat.Export(key, true)
	again.P = fresh

	failpoint.Enable(failpoint.Set0Factors)
	err := rsacompat.Import(key, again)
	failpoint.Reset()
	require.ErrorIs(t, err, rsacompat.ErrImport)

	assert.True(t, fresh.Freed())
	for _, v := range []*bn.Int{c.N, c.E, c.D, c.P, c.Q, c.Dmp1, c.Dmq1, c.Iqmp} {
		assert.False(t, v.Freed(), "held component released")
	}
	assert.True(t, rsacompat.ValidSize(key))
	assert.Same(t, c.P, rsacompat.Export(key, true).P)

	key.Free()
	delta := bn.ReadStats().Since(base)
	assert.Zero(t, delta.Live())
	assert.Zero(t, delta.DoubleFrees)
}

func TestAccessorGeneration(t *testing.T) {
	skipUnlessGeneration(t, "accessor")
	assert.GreaterOrEqual(t, rsacompat.LibraryVersionNumber(), rsalib.Version110)
}

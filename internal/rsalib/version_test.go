package rsalib

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapVersion(t *testing.T) {
	tests := []struct {
		name       string
		openssl    uint32
		libressl   uint32
		want       uint32
		evpCleanup bool
	}{
		{"openssl 3", 0x300000d0, 0, 0x300000d0, false},
		{"openssl 1.0.2", 0x1000215f, 0, 0x1000215f, false},
		{"libressl 3.8", 0x20000000, 0x3080200f, 0x1010000f, true},
		{"libressl 2.7.0", 0x20000000, 0x2070000f, 0x1010000f, true},
		{"libressl 2.6.5", 0x20000000, 0x2060500f, 0x1000107f, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, evp := remapVersion(tc.openssl, tc.libressl)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.evpCleanup, evp)
		})
	}
}

func TestLayoutMatchesVersion(t *testing.T) {
	if VersionNumber() < Version110 {
		assert.Equal(t, LayoutFields, Layout)
	} else {
		assert.Equal(t, LayoutAccessor, Layout)
	}
	if libreSSLVersionNumber == 0 {
		assert.Equal(t, uint32(openSSLVersionNumber), VersionNumber())
		assert.False(t, NeedEVPCleanup())
	}
}

// The banner and the number come from different places in the system
// library: the number from its headers, the banner from the library itself.
// Both must name the same release series.
func TestVersionTextMatchesNumber(t *testing.T) {
	text := VersionText()
	require.NotEmpty(t, text)

	prefix, number := "OpenSSL", openSSLVersionNumber
	if libreSSLVersionNumber != 0 {
		prefix, number = "LibreSSL", libreSSLVersionNumber
	}
	require.True(t, strings.HasPrefix(text, prefix+" "), "banner %q", text)

	var major, minor uint32
	_, err := fmt.Sscanf(text, prefix+" %d.%d", &major, &minor)
	require.NoError(t, err)
	assert.Equal(t, number>>28, major, "banner %q", text)
	assert.Equal(t, (number>>20)&0xff, minor, "banner %q", text)
}

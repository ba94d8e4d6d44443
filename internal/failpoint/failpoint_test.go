package failpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableFiresUntilDisabled(t *testing.T) {
	t.Cleanup(Reset)

	assert.False(t, Hit(BNNew))
	Enable(BNNew)
	assert.True(t, Hit(BNNew))
	assert.True(t, Hit(BNNew))
	Disable(BNNew)
	assert.False(t, Hit(BNNew))
}

func TestEnableAfterSkipsThenFiresCount(t *testing.T) {
	t.Cleanup(Reset)

	EnableAfter(RSANew, 2, 1)
	assert.False(t, Hit(RSANew))
	assert.False(t, Hit(RSANew))
	assert.True(t, Hit(RSANew))
	assert.False(t, Hit(RSANew))
}

func TestPointsAreIndependent(t *testing.T) {
	t.Cleanup(Reset)

	Enable(Set0Factors)
	assert.False(t, Hit(Set0Key))
	assert.True(t, Hit(Set0Factors))
	assert.False(t, Hit(Set0CRTParams))
}

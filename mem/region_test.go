package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestByteRegion_StartsZeroed tests that a fresh region reads as zeroes.
func TestByteRegion_StartsZeroed(t *testing.T) {
	r := NewByteRegion(64)
	defer r.Close()

	require.Equal(t, 64, r.Size())
	for i, b := range r.Bytes() {
		require.Zero(t, b, "byte %d should be zero", i)
	}
}

// TestByteRegion_WritesStick tests that the backing slice is stable.
func TestByteRegion_WritesStick(t *testing.T) {
	r := NewByteRegion(16)
	defer r.Close()

	r.Bytes()[3] = 0xAB
	assert.Equal(t, byte(0xAB), r.Bytes()[3])
}

// TestByteRegion_DoubleCloseIsNoOp tests close idempotence.
func TestByteRegion_DoubleCloseIsNoOp(t *testing.T) {
	r := NewByteRegion(16)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Zero(t, r.Size())
}

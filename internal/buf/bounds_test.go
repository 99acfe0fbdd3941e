package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckedAdd tests overflow detection in both directions.
func TestCheckedAdd(t *testing.T) {
	sum, ok := CheckedAdd(1, 2)
	require.True(t, ok)
	assert.Equal(t, 3, sum)

	_, ok = CheckedAdd(math.MaxInt, 1)
	assert.False(t, ok)

	_, ok = CheckedAdd(math.MinInt, -1)
	assert.False(t, ok)
}

// TestSlice tests in-bounds and out-of-bounds requests.
func TestSlice(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	s, ok := Slice(b, 2, 4)
	require.True(t, ok)
	assert.Equal(t, []byte{2, 3, 4, 5}, s)

	s, ok = Slice(b, 0, 8)
	require.True(t, ok)
	assert.Len(t, s, 8)

	_, ok = Slice(b, 5, 4)
	assert.False(t, ok)

	_, ok = Slice(b, -1, 2)
	assert.False(t, ok)

	_, ok = Slice(b, 2, -1)
	assert.False(t, ok)

	_, ok = Slice(b, math.MaxInt, 2)
	assert.False(t, ok)
}

// TestHas tests the boolean wrapper.
func TestHas(t *testing.T) {
	b := make([]byte, 16)
	assert.True(t, Has(b, 8, 8))
	assert.False(t, Has(b, 9, 8))
	assert.True(t, Has(b, 16, 0))
}

package alloc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInvariants_RandomizedWorkload drives a deterministic pseudo-random
// allocate/free mix against a shadow model and checks the quantified
// invariants after every operation: handle alignment, handle uniqueness,
// and exact live-byte accounting.
//
// Sizes stay at or below 1 KiB and the live set is capped, so per-class
// reuse keeps the bump cursor well inside the region for the whole run.
func TestInvariants_RandomizedWorkload(t *testing.T) {
	const (
		ptrOffset = 16
		heapSize  = 1 << 20
		ops       = 5000
		maxLive   = 64
		maxSize   = 1024
	)

	rng := rand.New(rand.NewSource(42))
	h := New(ptrOffset, heapSize)
	defer h.Close()

	type block struct {
		handle   Handle
		itemSize uint32
	}
	var live []block
	var wantTotal uint32

	for i := 0; i < ops; i++ {
		if len(live) < maxLive && (len(live) == 0 || rng.Intn(2) == 0) {
			size := uint32(rng.Intn(maxSize + 1))
			ptr, err := h.Allocate(size)
			require.NoError(t, err)
			require.NotZero(t, ptr)

			// Alignment relative to the handle space origin.
			require.Zero(t, (ptr-ptrOffset)%8, "handle %#x misaligned", ptr)
			require.GreaterOrEqual(t, ptr-ptrOffset, uint32(8))

			// Uniqueness against every live handle.
			for _, b := range live {
				require.NotEqual(t, b.handle, ptr, "handle %#x handed out twice", ptr)
			}

			item := nextPowTwoMin8(size)
			live = append(live, block{handle: ptr, itemSize: item})
			wantTotal += item + 8
		} else {
			idx := rng.Intn(len(live))
			b := live[idx]
			h.Deallocate(b.handle)
			live = append(live[:idx], live[idx+1:]...)
			wantTotal -= b.itemSize + 8
		}

		require.Equal(t, wantTotal, h.TotalSize(), "accounting drifted from the shadow model")
	}
}

// TestInvariants_RoundTripSameHandle tests the round-trip property across
// every size class that fits a small heap.
func TestInvariants_RoundTripSameHandle(t *testing.T) {
	h := New(0, 1<<16)
	defer h.Close()

	// Occupy offset 0 so freed heads are always distinguishable from the
	// empty-list marker.
	_, err := h.Allocate(8)
	require.NoError(t, err)

	for class := 0; class < 12; class++ {
		size := ItemSizeForClass(class)
		ptr, err := h.Allocate(size)
		require.NoError(t, err, "class %d", class)

		h.Deallocate(ptr)
		back, err := h.Allocate(size)
		require.NoError(t, err, "class %d", class)
		require.Equal(t, ptr, back, "class %d should round-trip to the same handle", class)

		h.Deallocate(back)
	}
}

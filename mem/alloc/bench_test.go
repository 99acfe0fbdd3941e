package alloc

import "testing"

// BenchmarkAllocateDeallocate measures the steady-state cost of a reuse
// round trip: every iteration pops and pushes the same free-list node.
func BenchmarkAllocateDeallocate(b *testing.B) {
	h := New(0, 1<<20)
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ptr, err := h.Allocate(64)
		if err != nil {
			b.Fatal(err)
		}
		h.Deallocate(ptr)
	}
}

// BenchmarkAllocateDeallocateMixedClasses cycles through several size
// classes so each iteration touches a different free list.
func BenchmarkAllocateDeallocateMixedClasses(b *testing.B) {
	sizes := []uint32{8, 24, 100, 500, 2000, 10000}

	h := New(0, 1<<20)
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ptr, err := h.Allocate(sizes[i%len(sizes)])
		if err != nil {
			b.Fatal(err)
		}
		h.Deallocate(ptr)
	}
}

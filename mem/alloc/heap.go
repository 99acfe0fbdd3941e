package alloc

import (
	"fmt"
	"math"
	"time"

	log "github.com/ChainSafe/log15"

	"github.com/jpetersen/guestheap/internal/buf"
	"github.com/jpetersen/guestheap/internal/format"
	"github.com/jpetersen/guestheap/mem"
)

// FreeingBumpAllocator sub-allocates a fixed-size byte region using a
// monotonic bump cursor with per-size-class LIFO free lists layered on
// top. Freed blocks are recycled through their class list before the
// cursor ever advances; the cursor itself never moves backwards.
type FreeingBumpAllocator struct {
	region mem.Region

	// bumper is the next unallocated offset in the bump region. It only
	// grows; recycled space flows through heads instead.
	bumper uint32

	// heads holds the first freed block of each size class, or 0 when the
	// list is empty. Offset 0 can double as the empty marker because the
	// first block ever freed at offset 0 writes a 0 link, which terminates
	// the list all the same.
	heads [format.NumClasses]uint32

	// ptrOffset is added to every returned handle, aligned up to 8 at
	// construction so the handle space origin keeps payloads aligned.
	ptrOffset uint32

	maxHeapSize uint32

	// totalSize is the sum of itemSize+8 over all live blocks.
	totalSize uint32

	// live records the internal payload offset of every outstanding
	// handle, for double-allocate and double-free detection.
	live map[uint32]struct{}

	log   log.Logger
	start time.Time
}

// New creates an allocation heap over a fresh zeroed region of heapSize
// bytes. The maximum size which can be allocated at once is 16 MiB.
//
// Handles returned by Allocate start from ptrOffset on; a padding is added
// if ptrOffset is not already a multiple of 8.
func New(ptrOffset, heapSize uint32) *FreeingBumpAllocator {
	a, err := NewFromRegion(mem.NewByteRegion(int(heapSize)), ptrOffset)
	if err != nil {
		// A fresh ByteRegion always fits the 32-bit handle space.
		panic(err)
	}
	return a
}

// NewFromRegion creates an allocation heap over an existing region, taking
// ownership of it for the allocator's lifetime. The region size becomes
// the heap capacity and must fit in 32 bits.
func NewFromRegion(r mem.Region, ptrOffset uint32) (*FreeingBumpAllocator, error) {
	if r == nil {
		return nil, ErrNilRegion
	}
	size := r.Size()
	if uint64(size) > math.MaxUint32 {
		return nil, ErrRegionTooLarge
	}

	a := &FreeingBumpAllocator{
		region:      r,
		ptrOffset:   format.Align8U32(ptrOffset),
		maxHeapSize: uint32(size),
		live:        make(map[uint32]struct{}),
		log:         log.New("pkg", "alloc"),
		start:       time.Now(),
	}
	a.log.Debug("created guest heap", "heap_size", a.maxHeapSize, "ptr_offset", a.ptrOffset)
	return a, nil
}

// Allocate reserves space for size bytes and returns the handle of the
// payload, or handle 0 with ErrSizeTooLarge or ErrOutOfSpace when the
// request cannot be satisfied.
func (a *FreeingBumpAllocator) Allocate(size uint32) (Handle, error) {
	if size > format.MaxAllocation {
		return 0, ErrSizeTooLarge
	}
	itemSize := nextPowTwoMin8(size)

	// Capacity gate on accounted live bytes. The bump cursor itself is not
	// compared against the region end here; a cursor overrun is caught at
	// the header write below and treated as fatal.
	if uint64(itemSize)+format.HeaderSize+uint64(a.totalSize) > uint64(a.maxHeapSize) {
		return 0, ErrOutOfSpace
	}

	class := classForItemSize(itemSize)
	data := a.region.Bytes()

	var head uint32
	if a.heads[class] != 0 {
		// Something on the free list: pop it.
		head = a.heads[class]
		link, ok := buf.Slice(data, int(head), format.LinkSize)
		if !ok {
			a.fatalf("free list for class %d points outside the region: offset %#x", class, head)
		}
		a.heads[class] = format.ReadU32(link, 0)
	} else {
		// Nothing to be freed. Bump.
		head = a.bump(itemSize + format.HeaderSize)
	}

	hdr, ok := buf.Slice(data, int(head), format.HeaderSize)
	if !ok {
		a.fatalf("block header at %#x overruns the region of %d bytes", head, a.maxHeapSize)
	}
	hdr[0] = byte(class)
	for i := 1; i <= format.SentinelLen; i++ {
		hdr[i] = format.SentinelByte
	}

	a.totalSize += itemSize + format.HeaderSize

	ptr := head + format.HeaderSize
	if _, ok := a.live[ptr]; ok {
		a.fatalf("double allocate at %#x", ptr)
	}
	a.live[ptr] = struct{}{}

	a.log.Debug("allocated", "ptr", ptr, "total_size", a.totalSize)
	return a.ptrOffset + ptr, nil
}

// Deallocate releases a handle previously returned by Allocate on this
// instance. The block is pushed onto its size-class free list; its space
// never returns to the bump region.
func (a *FreeingBumpAllocator) Deallocate(handle Handle) {
	ptr := handle - a.ptrOffset
	if _, ok := a.live[ptr]; !ok {
		a.fatalf("double free at %#x", ptr)
	}

	head := ptr - format.HeaderSize
	data := a.region.Bytes()
	hdr, ok := buf.Slice(data, int(head), format.HeaderSize)
	if !ok {
		a.fatalf("header of %#x lies outside the region", ptr)
	}

	class := int(hdr[0])
	for i := 1; i <= format.SentinelLen; i++ {
		if hdr[i] != format.SentinelByte {
			a.fatalf("corrupted header sentinel at %#x", ptr)
		}
	}
	if class >= format.NumClasses {
		a.fatalf("invalid size class %d in header at %#x", class, ptr)
	}

	// Link the block in as the new list head.
	format.PutU32(hdr, 0, a.heads[class])
	a.heads[class] = head

	delete(a.live, ptr)

	// Saturating decrement; under the header invariants the subtraction
	// never actually bottoms out.
	blockSize := ItemSizeForClass(class) + format.HeaderSize
	if blockSize > a.totalSize {
		a.totalSize = 0
	} else {
		a.totalSize -= blockSize
	}

	a.log.Debug("deallocated", "ptr", ptr, "total_size", a.totalSize)
}

// TotalSize returns the number of live bytes, headers included.
func (a *FreeingBumpAllocator) TotalSize() uint32 {
	return a.totalSize
}

// Close releases the backing region. The allocator must not be used
// afterwards.
func (a *FreeingBumpAllocator) Close() error {
	a.log.Debug("destroying guest heap", "lifetime", time.Since(a.start))
	return a.region.Close()
}

// bump advances the cursor and returns its previous value.
func (a *FreeingBumpAllocator) bump(n uint32) uint32 {
	res := a.bumper
	a.bumper += n
	return res
}

// fatalf reports an unrecoverable contract violation: these indicate
// memory-safety bugs in the layer above, so execution must not continue
// with a corrupted heap.
func (a *FreeingBumpAllocator) fatalf(f string, args ...interface{}) {
	msg := fmt.Sprintf("alloc: "+f, args...)
	a.log.Crit(msg)
	panic(msg)
}

// Compile-time interface check
var _ Allocator = (*FreeingBumpAllocator)(nil)

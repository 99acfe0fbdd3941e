package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpetersen/guestheap/mem"
	"github.com/jpetersen/guestheap/mem/alloc"
)

var (
	stressHeapSize  uint32
	stressPtrOffset uint32
	stressOps       int
	stressSeed      int64
	stressMaxSize   uint32
	stressMaxLive   int
	stressMmap      bool
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().Uint32Var(&stressHeapSize, "heap-size", 1<<20, "Heap size in bytes")
	cmd.Flags().Uint32Var(&stressPtrOffset, "ptr-offset", 0, "Handle space origin")
	cmd.Flags().IntVar(&stressOps, "ops", 100000, "Number of operations to run")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "PRNG seed (same seed, same workload)")
	cmd.Flags().Uint32Var(&stressMaxSize, "max-size", 1024, "Largest request size")
	cmd.Flags().IntVar(&stressMaxLive, "max-live", 64, "Cap on simultaneously live handles")
	cmd.Flags().BoolVar(&stressMmap, "mmap", false, "Back the heap with an anonymous mapping")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a deterministic allocate/free workload",
		Long: `The stress command drives a pseudo-random allocate/free mix against a
fresh heap and reports allocation counts, failures, and accounting. The
workload is fully determined by the seed.

Example:
  heapctl stress
  heapctl stress --ops 1000000 --max-size 4096 --seed 7
  heapctl stress --mmap --heap-size 67108864 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

type StressReport struct {
	Ops           int
	Allocs        int
	Frees         int
	Failures      int
	LiveAtEnd     int
	PeakTotalSize uint32
	FinalTotal    uint32
	HeapSize      uint32
	ElapsedMicros int64
}

func runStress() error {
	var (
		h   *alloc.FreeingBumpAllocator
		err error
	)
	if stressMmap {
		var r *mem.AnonRegion
		r, err = mem.NewAnonRegion(int(stressHeapSize))
		if err != nil {
			return fmt.Errorf("backing region: %w", err)
		}
		h, err = alloc.NewFromRegion(r, stressPtrOffset)
	} else {
		h = alloc.New(stressPtrOffset, stressHeapSize)
	}
	if err != nil {
		return err
	}
	defer h.Close()

	printVerbose("heap of %d bytes, origin %d, %d ops, seed %d\n",
		stressHeapSize, stressPtrOffset, stressOps, stressSeed)

	rng := rand.New(rand.NewSource(stressSeed))
	report := StressReport{Ops: stressOps, HeapSize: stressHeapSize}

	var live []alloc.Handle
	start := time.Now()

	for i := 0; i < stressOps; i++ {
		if len(live) < stressMaxLive && (len(live) == 0 || rng.Intn(2) == 0) {
			size := uint32(rng.Int63n(int64(stressMaxSize) + 1))
			ptr, err := h.Allocate(size)
			if err != nil {
				report.Failures++
				continue
			}
			report.Allocs++
			live = append(live, ptr)
		} else {
			idx := rng.Intn(len(live))
			h.Deallocate(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			report.Frees++
		}
		if h.TotalSize() > report.PeakTotalSize {
			report.PeakTotalSize = h.TotalSize()
		}
	}

	report.LiveAtEnd = len(live)
	report.FinalTotal = h.TotalSize()
	report.ElapsedMicros = time.Since(start).Microseconds()

	if jsonOut {
		return printJSON(report)
	}

	printInfo("ops:        %d\n", report.Ops)
	printInfo("allocs:     %d\n", report.Allocs)
	printInfo("frees:      %d\n", report.Frees)
	printInfo("failures:   %d\n", report.Failures)
	printInfo("live:       %d\n", report.LiveAtEnd)
	printInfo("peak bytes: %d\n", report.PeakTotalSize)
	printInfo("end bytes:  %d\n", report.FinalTotal)
	printInfo("elapsed:    %dus\n", report.ElapsedMicros)
	return nil
}

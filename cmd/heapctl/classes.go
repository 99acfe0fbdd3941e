package main

import (
	"github.com/spf13/cobra"

	"github.com/jpetersen/guestheap/mem/alloc"
)

func init() {
	rootCmd.AddCommand(newClassesCmd())
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "Print the size-class table",
		Long: `The classes command prints the allocator's power-of-two size classes:
the class index, the payload capacity, and the total block size including
the 8-byte header.

Example:
  heapctl classes
  heapctl classes --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses()
		},
	}
}

type SizeClass struct {
	Class     int
	ItemSize  uint32
	BlockSize uint32
}

func runClasses() error {
	classes := make([]SizeClass, 0, alloc.NumClasses)
	for i := 0; i < alloc.NumClasses; i++ {
		item := alloc.ItemSizeForClass(i)
		classes = append(classes, SizeClass{
			Class:     i,
			ItemSize:  item,
			BlockSize: item + 8,
		})
	}

	if jsonOut {
		return printJSON(classes)
	}

	printInfo("%-6s %12s %12s\n", "class", "item size", "block size")
	for _, c := range classes {
		printInfo("%-6d %12d %12d\n", c.Class, c.ItemSize, c.BlockSize)
	}
	return nil
}

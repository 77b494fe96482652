package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatCmd())
}

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <hive>",
		Short: "Show allocator statistics for a hive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			stats, err := store.Statistics()
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(stats)
			}
			printInfo("size:             %d\n", stats.TotalSize)
			printInfo("allocated cells:  %d\n", stats.AllocatedCells)
			printInfo("free cells:       %d\n", stats.FreeCells)
			printInfo("free bytes:       %d\n", stats.FreeSize)
			printInfo("largest free:     %d\n", stats.LargestFreeCell)
			printInfo("fragmentation:    %.2f\n", stats.Fragmentation)
			return nil
		},
	}
}

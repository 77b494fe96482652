package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCompactCmd())
}

func newCompactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compact <hive>",
		Short: "Compact a hive, packing allocated cells toward the front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			before, err := store.Statistics()
			if err != nil {
				return err
			}
			if err := store.Compact(); err != nil {
				return err
			}
			after, err := store.Statistics()
			if err != nil {
				return err
			}
			printInfo("free cells: %d -> %d\n", before.FreeCells, after.FreeCells)
			printInfo("fragmentation: %.2f -> %.2f\n", before.Fragmentation, after.Fragmentation)
			return nil
		},
	}
}

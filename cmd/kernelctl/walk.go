package main

import (
	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/internal/format"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newWalkCmd())
}

func newWalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk <hive>",
		Short: "List every cell in offset order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			var cells []hive.CellInfo
			err = store.Walk(func(c hive.CellInfo) bool {
				cells = append(cells, c)
				return true
			})
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cells)
			}
			for _, c := range cells {
				state := "free"
				if c.State == format.CellAllocated {
					state = "allocated"
				}
				printInfo("%-10d %-10s size=%-6d sig=%s\n", c.Ref, state, c.Size, format.SignatureName(c.Signature))
			}
			return nil
		},
	}
}

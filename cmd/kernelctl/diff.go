package main

import (
	"encoding/hex"

	"github.com/arizkami/aurora-kernel-sub000/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old-hive> <new-hive>",
		Short: "Compare two hive images key-by-key and value-by-value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldStore, closeOld, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeOld()
			newStore, closeNew, err := openStore(args[1])
			if err != nil {
				return err
			}
			defer closeNew()

			oldFacade, err := config.Open(oldStore)
			if err != nil {
				return err
			}
			newFacade, err := config.Open(newStore)
			if err != nil {
				return err
			}

			changes, err := config.Diff(oldFacade, newFacade)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(changes)
			}
			for _, c := range changes {
				if c.Name == "" {
					printInfo("%s %s\n", c.Kind, c.Path)
					continue
				}
				printInfo("%s %s\\%s old=%s new=%s\n", c.Kind, c.Path, c.Name, hex.EncodeToString(c.Old), hex.EncodeToString(c.New))
			}
			return nil
		},
	}
}

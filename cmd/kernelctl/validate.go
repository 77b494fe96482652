package main

import (
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <hive>",
		Short: "Run an integrity check against a hive image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			status := store.IntegrityCheck()
			if jsonOut {
				return printJSON(map[string]string{"status": status.String()})
			}
			printInfo("integrity: %s\n", status)
			if status != hive.IntegrityOK {
				return fmt.Errorf("integrity check failed: %s", status)
			}
			return nil
		},
	}
}

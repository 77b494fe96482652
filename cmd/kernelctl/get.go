package main

import (
	"encoding/hex"
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd(), newKeysCmd(), newValuesCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <hive> <path> <name>",
		Short: "Get a value under a config path",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			f, err := config.Open(store)
			if err != nil {
				return err
			}
			vtype, data, err := f.GetValue(args[1], args[2])
			if err != nil {
				return fmt.Errorf("get %s\\%s: %w", args[1], args[2], err)
			}
			if jsonOut {
				return printJSON(map[string]interface{}{
					"type": vtype.String(), "hex": hex.EncodeToString(data),
				})
			}
			printInfo("type=%s data=%s\n", vtype, hex.EncodeToString(data))
			return nil
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <hive> <path>",
		Short: "List direct subkeys of a config path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			f, err := config.Open(store)
			if err != nil {
				return err
			}
			names, err := f.ListSubkeys(args[1])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(names)
			}
			for _, name := range names {
				printInfo("%s\n", name)
			}
			return nil
		},
	}
}

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values <hive> <path>",
		Short: "List value names under a config path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			f, err := config.Open(store)
			if err != nil {
				return err
			}
			names, err := f.ListValues(args[1])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(names)
			}
			for _, name := range names {
				printInfo("%s\n", name)
			}
			return nil
		},
	}
}

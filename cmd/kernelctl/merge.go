package main

import (
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/config"
	"github.com/spf13/cobra"
)

var mergeStrategy string

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVar(&mergeStrategy, "strategy", "overwrite", "overwrite|keep-existing|fail-on-conflict")
	rootCmd.AddCommand(cmd)
}

func parseMergeStrategy(s string) (config.MergeStrategy, error) {
	switch s {
	case "overwrite":
		return config.MergeOverwrite, nil
	case "keep-existing":
		return config.MergeKeepExisting, nil
	case "fail-on-conflict":
		return config.MergeFailOnConflict, nil
	default:
		return 0, fmt.Errorf("unknown merge strategy %q", s)
	}
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <dst-hive> <src-hive> <subtree-path>",
		Short: "Merge a subtree from one hive into another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := parseMergeStrategy(mergeStrategy)
			if err != nil {
				return err
			}

			dstStore, closeDst, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeDst()
			srcStore, closeSrc, err := openStore(args[1])
			if err != nil {
				return err
			}
			defer closeSrc()

			dst, err := config.Open(dstStore)
			if err != nil {
				return err
			}
			src, err := config.Open(srcStore)
			if err != nil {
				return err
			}

			result, err := config.Merge(dst, src, args[2], strategy)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(result)
			}
			printInfo("keys_created=%d values_written=%d values_skipped=%d values_conflict=%d\n",
				result.KeysCreated, result.ValuesWritten, result.ValuesSkipped, result.ValuesConflict)
			return nil
		},
	}
}

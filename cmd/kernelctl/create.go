package main

import (
	"github.com/spf13/cobra"
)

var createSize int

func init() {
	cmd := newCreateCmd()
	cmd.Flags().IntVar(&createSize, "size", 65536, "total image size in bytes")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <hive>",
		Short: "Create a fresh hive image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := createStore(args[0], createSize)
			if err != nil {
				return err
			}
			printInfo("created %s (%d bytes)\n", args[0], createSize)
			return nil
		},
	}
}

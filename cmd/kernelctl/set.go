package main

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/arizkami/aurora-kernel-sub000/config"
	"github.com/spf13/cobra"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "string", "value type: string|dword|qword|binary")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <hive> <path> <name> <value>",
		Short: "Set a value under a config path, creating the path if absent",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			vtype, data, err := encodeSetValue(setType, args[3])
			if err != nil {
				return err
			}

			f, err := config.Open(store)
			if err != nil {
				return err
			}
			if err := f.SetValue(args[1], args[2], vtype, data); err != nil {
				return fmt.Errorf("set %s\\%s: %w", args[1], args[2], err)
			}
			printInfo("set %s\\%s = %s\n", args[1], args[2], args[3])
			return nil
		},
	}
}

func encodeSetValue(kind, raw string) (config.ValueType, []byte, error) {
	switch kind {
	case "string":
		return config.TypeString, []byte(raw), nil
	case "dword":
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid dword %q: %w", raw, err)
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(n))
		return config.TypeDWord, buf, nil
	case "qword":
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid qword %q: %w", raw, err)
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, n)
		return config.TypeQWord, buf, nil
	case "binary":
		return config.TypeBinary, []byte(raw), nil
	default:
		return 0, nil, fmt.Errorf("unknown type %q", kind)
	}
}

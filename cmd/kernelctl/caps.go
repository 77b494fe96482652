package main

import (
	"strings"

	"github.com/arizkami/aurora-kernel-sub000/capability"
	"github.com/arizkami/aurora-kernel-sub000/kernel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCapsCmd())
}

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "List the capability table of each thread in a demo kernel simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaps()
		},
	}
}

// capRow is one occupied capability slot, reported for a single thread's
// table.
type capRow struct {
	Thread kernel.ThreadID `json:"thread"`
	Slot   int             `json:"slot"`
	Rights string          `json:"rights"`
}

// formatRights renders a Rights bitmask the way the spec names the four
// rights (spec §3: Send/Recv/Map/Ctrl), joined in bit order.
func formatRights(r capability.Rights) string {
	var names []string
	if r&capability.Send != 0 {
		names = append(names, "send")
	}
	if r&capability.Recv != 0 {
		names = append(names, "recv")
	}
	if r&capability.Map != 0 {
		names = append(names, "map")
	}
	if r&capability.Ctrl != 0 {
		names = append(names, "ctrl")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

func runCaps() error {
	dk, err := newDemoKernel()
	if err != nil {
		return err
	}

	var rows []capRow
	for _, tid := range dk.threadIDs() {
		caps, err := dk.k.CapsOf(tid)
		if err != nil {
			return err
		}
		for c := capability.Cap(0); c < capability.NumSlots; c++ {
			rights, ok := caps.Rights(c)
			if !ok {
				continue
			}
			rows = append(rows, capRow{Thread: tid, Slot: int(c), Rights: formatRights(rights)})
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	for _, r := range rows {
		printInfo("thread %d slot %d rights=%s\n", r.Thread, r.Slot, r.Rights)
	}
	return nil
}

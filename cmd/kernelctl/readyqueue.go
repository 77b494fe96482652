package main

import (
	"github.com/arizkami/aurora-kernel-sub000/kernel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReadyQueueCmd())
}

func newReadyQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready-queue",
		Short: "Show the scheduler's per-priority ready queue lengths in a demo kernel simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReadyQueue()
		},
	}
}

// readyQueueRow is one priority level's ready queue length (spec §4.E:
// five priority ready queues, FIFO within a queue).
type readyQueueRow struct {
	Priority kernel.Priority `json:"priority"`
	Len      int             `json:"len"`
}

func runReadyQueue() error {
	dk, err := newDemoKernel()
	if err != nil {
		return err
	}

	var rows []readyQueueRow
	for prio := kernel.PriorityIdle; prio <= kernel.PriorityRealtime; prio++ {
		rows = append(rows, readyQueueRow{Priority: prio, Len: dk.s.ReadyLen(prio)})
	}

	if jsonOut {
		return printJSON(rows)
	}
	for _, r := range rows {
		printInfo("ready[%d]=%d\n", r.Priority, r.Len)
	}
	return nil
}

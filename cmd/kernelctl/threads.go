package main

import (
	"github.com/arizkami/aurora-kernel-sub000/kernel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newThreadsCmd())
}

func newThreadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "threads",
		Short: "List the threads and their state/priority in a demo kernel simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThreads()
		},
	}
}

// threadRow is one thread's table entry (spec §4.D: ThreadState/Priority).
type threadRow struct {
	Thread   kernel.ThreadID    `json:"thread"`
	Process  kernel.ProcessID   `json:"process"`
	State    kernel.ThreadState `json:"state"`
	Priority kernel.Priority    `json:"priority"`
}

func runThreads() error {
	dk, err := newDemoKernel()
	if err != nil {
		return err
	}

	var rows []threadRow
	for _, tid := range dk.threadIDs() {
		state, err := dk.k.State(tid)
		if err != nil {
			return err
		}
		prio, err := dk.k.Priority(tid)
		if err != nil {
			return err
		}
		rows = append(rows, threadRow{Thread: tid, Process: dk.pid, State: state, Priority: prio})
	}

	if jsonOut {
		return printJSON(rows)
	}
	for _, r := range rows {
		printInfo("process %d thread %d state=%s priority=%d\n", r.Process, r.Thread, r.State, r.Priority)
	}
	return nil
}

package main

import (
	"github.com/arizkami/aurora-kernel-sub000/ipc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSimCmd())
}

func newSimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sim",
		Short: "Run a blocking send/receive scenario against the in-memory kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim()
		},
	}
}

func runSim() error {
	dk, err := newDemoKernel()
	if err != nil {
		return err
	}

	m1, _ := ipc.NewMessage(1, 2, 3, 4)
	m2, _ := ipc.NewMessage(5, 6, 7, 8)

	status1 := dk.gate.Send(dk.sender, dk.sendCap, m1)
	printInfo("send m1: %s\n", status1)

	status2 := dk.gate.Send(dk.sender, dk.sendCap, m2)
	printInfo("send m2: %s\n", status2)

	state, err := dk.k.State(dk.sender)
	if err != nil {
		return err
	}
	printInfo("sender state after m2: %s\n", state)

	got, err := dk.gate.Receive(dk.receiver)
	if err != nil {
		return err
	}
	printInfo("receiver got: regs=%v len=%d\n", got.Regs, got.Len)

	state, err = dk.k.State(dk.sender)
	if err != nil {
		return err
	}
	printInfo("sender state after drain: %s\n", state)

	status3 := dk.gate.Send(dk.sender, dk.sendCap, m2)
	printInfo("send m2 retry: %s\n", status3)

	got2, err := dk.gate.Receive(dk.receiver)
	if err != nil {
		return err
	}
	printInfo("receiver got: regs=%v len=%d\n", got2.Regs, got2.Len)
	return nil
}

package main

import (
	"github.com/arizkami/aurora-kernel-sub000/internal/repair"
	"github.com/spf13/cobra"
)

var (
	repairDryRun   bool
	repairAutoOnly bool
	repairMaxRisk  string
)

func init() {
	cmd := newRepairCmd()
	cmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "preview repairs without applying them")
	cmd.Flags().BoolVar(&repairAutoOnly, "auto-only", true, "only apply auto-applicable repairs")
	cmd.Flags().StringVar(&repairMaxRisk, "max-risk", "low", "maximum risk to apply: none|low|medium|high")
	rootCmd.AddCommand(cmd)
}

func parseRisk(s string) repair.RiskLevel {
	switch s {
	case "none":
		return repair.RiskNone
	case "medium":
		return repair.RiskMedium
	case "high":
		return repair.RiskHigh
	default:
		return repair.RiskLow
	}
}

func newRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair <hive>",
		Short: "Diagnose a hive and apply repairable fixes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := repair.Repair(store, repair.RepairOptions{
				DryRun:   repairDryRun,
				AutoOnly: repairAutoOnly,
				MaxRisk:  parseRisk(repairMaxRisk),
			})
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(result)
			}
			printInfo("applied=%d skipped=%d failed=%d dry_run=%v (%s)\n",
				result.Applied, result.Skipped, result.Failed, result.DryRun, result.Duration)
			for _, d := range result.Diagnostics {
				printVerbose("offset=%d applied=%v %s\n", d.Offset, d.Applied, d.Description)
			}
			return nil
		},
	}
}

package main

import (
	"github.com/arizkami/aurora-kernel-sub000/internal/repair"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDiagnoseCmd())
}

func newDiagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose <hive>",
		Short: "Run the repair engine's structural/integrity diagnosis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			report, err := repair.Diagnose(store)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(report)
			}
			printInfo("critical=%d errors=%d warnings=%d info=%d (scanned in %s)\n",
				report.Summary.Critical, report.Summary.Errors, report.Summary.Warnings, report.Summary.Info, report.ScanTime)
			for _, d := range report.Diagnostics {
				printInfo("[%s] offset=%d %s\n", d.Severity, d.Offset, d.Message)
				if d.Repair != nil {
					printVerbose("  repair: %s (risk=%s, auto=%v)\n", d.Repair.Description, d.Repair.Risk, d.Repair.AutoApplicable)
				}
			}
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var format, source string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print path metrics and degree distributions",
		Long: "Runs BFS from the source node (default: SOURCE_NODE, else the first node in the file) " +
			"and prints path-length statistics with both degree histograms.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, source, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", fmtText, "Output format: text|json")
	cmd.Flags().StringVar(&source, "source", "", "BFS source node (env: SOURCE_NODE)")

	return cmd
}

func runReport(cmd *cobra.Command, source, format string) error {
	if err := checkFormat(format, fmtText, fmtJSON); err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if source == "" {
		source = a.cfg.SourceNode
	}

	svc, err := a.analysis(cmd)
	if err != nil {
		return err
	}

	report, err := svc.Report(cmd.Context(), source)
	if err != nil {
		return err
	}

	if format == fmtJSON {
		return formatJSON(cmd.OutOrStdout(), report)
	}

	return printReport(cmd.OutOrStdout(), report)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find a shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, fmtText, fmtJSON); err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			svc, err := a.analysis(cmd)
			if err != nil {
				return err
			}

			result, err := svc.ShortestPath(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if format == fmtJSON {
				return formatJSON(cmd.OutOrStdout(), result)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d hops)\n", strings.Join(result.Path, " -> "), result.Hops)

			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", fmtText, "Output format: text|json")

	return cmd
}

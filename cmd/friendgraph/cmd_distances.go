package main

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/persistorai/friendgraph/internal/models"
)

func newDistancesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "distances <source>",
		Short: "Print the hop distance from source to every reachable node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, fmtJSON, fmtTable); err != nil {
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

			result, err := svc.Distances(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if format == fmtTable {
				return formatTable(cmd.OutOrStdout(), []string{"NODE", "HOPS"}, distanceRows(result.Distances))
			}

			return formatJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&format, "format", fmtJSON, "Output format: json|table")

	return cmd
}

// distanceRows orders nodes by distance, then by ID.
func distanceRows(d models.DistanceMap) [][]string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(d[a], d[b]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{id, strconv.Itoa(d[id])})
	}

	return rows
}

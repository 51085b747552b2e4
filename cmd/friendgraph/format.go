package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/persistorai/friendgraph/internal/models"
)

// Output formats accepted by --format.
const (
	fmtText  = "text"
	fmtJSON  = "json"
	fmtTable = "table"
)

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}

	return fmt.Errorf("unknown format %q (want %s)", format, strings.Join(allowed, "|"))
}

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func formatTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteByte('\n')
	}

	writeRow(headers)

	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeRow(seps)

	for _, row := range rows {
		writeRow(row)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// printReport writes the console report: node count, path metrics, both
// histograms, then both averages.
func printReport(w io.Writer, r *models.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of nodes in the graph: %d\n", r.Nodes)
	fmt.Fprintf(&b, "Max path length: %d\n", r.Paths.Max)
	fmt.Fprintf(&b, "Min path length: %d\n", r.Paths.Min)
	fmt.Fprintf(&b, "Median path length: %.2f\n", r.Paths.Median)
	fmt.Fprintf(&b, "Standard deviation: %.2f\n", r.Paths.StdDev)
	fmt.Fprintf(&b, "Average distance: %.2f\n", r.Paths.Mean)
	fmt.Fprintf(&b, "Degree Distribution: %s\n", r.Degree)
	fmt.Fprintf(&b, "Degree Distribution at Distance 2: %s\n", r.SecondOrder)
	fmt.Fprintf(&b, "Average degree at distance 1: %.2f\n", r.Averages.Degree)
	fmt.Fprintf(&b, "Average degree at distance 2: %.2f\n", r.Averages.SecondOrder)

	_, err := io.WriteString(w, b.String())

	return err
}

package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/persistorai/friendgraph/internal/models"
)

func TestRoot_PrintsTextReport(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "data.csv", fixtureCSV)

	out, err := execute(t, "--data", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Number of nodes in the graph: 3",
		"Max path length: 2",
		"Min path length: 0",
		"Median path length: 1.00",
		"Standard deviation: 0.82",
		"Average distance: 1.00",
		"Degree Distribution: {1: 2, 2: 1}",
		"Degree Distribution at Distance 2: {0: 1, 1: 2}",
		"Average degree at distance 1: 1.33",
		"Average degree at distance 2: 0.67",
	}, "\n") + "\n"

	if out != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	isolateEnv(t)

	if _, err := execute(t, "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestReport_JSON(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "data.csv", fixtureCSV)

	out, err := execute(t, "--data", data, "report", "--format", "json", "--source", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report models.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if report.Source != "3" || report.Paths.Max != 2 || report.Components != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestReport_SourceFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SOURCE_NODE", "2")
	data := writeFile(t, "data.csv", fixtureCSV)

	out, err := execute(t, "--data", data, "report", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report models.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if report.Source != "2" || report.Paths.Max != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestReport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(data string) []string
		wantIs  error
		wantMsg string
	}{
		{
			name:   "unknown source",
			args:   func(d string) []string { return []string{"--data", d, "report", "--source", "99"} },
			wantIs: models.ErrNodeNotFound,
		},
		{
			name:    "bad format",
			args:    func(d string) []string { return []string{"--data", d, "report", "--format", "xml"} },
			wantMsg: "unknown format",
		},
		{
			name:   "missing file",
			args:   func(d string) []string { return []string{"--data", d + ".missing"} },
			wantIs: models.ErrReadInput,
		},
		{
			name:    "same columns",
			args:    func(d string) []string { return []string{"--data", d, "--id-column", "9"} },
			wantMsg: "must differ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolateEnv(t)
			data := writeFile(t, "data.csv", fixtureCSV)

			_, err := execute(t, tc.args(data)...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Errorf("error = %v, want %v", err, tc.wantIs)
			}

			if tc.wantMsg != "" && !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tc.wantMsg)
			}
		})
	}
}

func TestReport_ShortRowAborts(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "data.csv", fixtureCSV+"4,short\n")

	_, err := execute(t, "--data", data)

	var rowErr *models.RowError
	if !errors.As(err, &rowErr) || rowErr.Line != 5 {
		t.Fatalf("error = %v, want RowError at line 5", err)
	}
}

func TestDistances(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "data.csv", fixtureCSV)

	out, err := execute(t, "--data", data, "distances", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result models.DistanceResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.Distances["3"] != 2 || result.Reached != 3 {
		t.Errorf("result = %+v", result)
	}

	table, err := execute(t, "--data", data, "distances", "2", "--format", "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTable := "NODE  HOPS\n----  ----\n2     0\n1     1\n3     1\n"
	if table != wantTable {
		t.Errorf("table =\n%s\nwant\n%s", table, wantTable)
	}

	if _, err := execute(t, "--data", data, "distances"); err == nil {
		t.Error("expected error without source argument")
	}
}

func TestPath(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "data.csv", fixtureCSV)

	out, err := execute(t, "--data", data, "path", "1", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != "1 -> 2 -> 3 (2 hops)\n" {
		t.Errorf("path output = %q", out)
	}

	if _, err := execute(t, "--data", data, "path", "1"); err == nil {
		t.Error("expected error with one argument")
	}
}

func TestServe_InvalidPort(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "data.csv", fixtureCSV)

	_, err := execute(t, "--data", data, "serve", "--port", "0")
	if err == nil || !strings.Contains(err.Error(), "PORT must be between") {
		t.Fatalf("error = %v, want port validation error", err)
	}
}

package main

import (
	"strings"
	"testing"

	"github.com/persistorai/friendgraph/internal/models"
)

func TestFormatTable(t *testing.T) {
	var b strings.Builder

	err := formatTable(&b, []string{"NODE", "HOPS"}, [][]string{{"alice", "0"}, {"b", "12"}})
	if err != nil {
		t.Fatalf("formatTable: %v", err)
	}

	want := "NODE   HOPS\n-----  ----\nalice  0\nb      12\n"
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestCheckFormat(t *testing.T) {
	if err := checkFormat("json", fmtText, fmtJSON); err != nil {
		t.Errorf("json should be accepted: %v", err)
	}

	err := checkFormat("yaml", fmtText, fmtJSON)
	if err == nil || !strings.Contains(err.Error(), "text|json") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDistanceRows(t *testing.T) {
	rows := distanceRows(models.DistanceMap{"c": 1, "a": 1, "s": 0, "z": 2})

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r[0] + "=" + r[1]
	}

	if strings.Join(got, ",") != "s=0,a=1,c=1,z=2" {
		t.Errorf("rows = %v", got)
	}
}

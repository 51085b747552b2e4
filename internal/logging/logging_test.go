package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/friendgraph/internal/logging"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer

	log, err := logging.NewWithOutput(&buf, "debug", "json")
	if err != nil {
		t.Fatalf("NewWithOutput: %v", err)
	}

	log.WithField("nodes", 3).Debug("graph.loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if entry["msg"] != "graph.loaded" {
		t.Errorf("msg = %v, want graph.loaded", entry["msg"])
	}

	if entry["nodes"] != float64(3) {
		t.Errorf("nodes = %v, want 3", entry["nodes"])
	}
}

func TestNewWithOutput_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	log, err := logging.NewWithOutput(&buf, "warn", "text")
	if err != nil {
		t.Fatalf("NewWithOutput: %v", err)
	}

	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", log.GetLevel())
	}

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestNewWithOutput_Errors(t *testing.T) {
	if _, err := logging.NewWithOutput(&bytes.Buffer{}, "loud", "text"); err == nil {
		t.Error("expected error for unknown level")
	}

	if _, err := logging.NewWithOutput(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

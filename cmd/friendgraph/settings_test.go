package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeHomeConfig(t *testing.T, content string) {
	t.Helper()

	dir := filepath.Join(os.Getenv("HOME"), ".friendgraph")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestConfigFile_HomeDefault(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "data.csv", fixtureCSV)
	writeHomeConfig(t, "data_file: "+data+"\nsource_node: \"3\"\n")

	out, err := execute(t, "report", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `"source": "3"`) {
		t.Errorf("expected source from config file, got %s", out)
	}
}

func TestConfigFile_Precedence(t *testing.T) {
	isolateEnv(t)
	good := writeFile(t, "data.csv", fixtureCSV)
	writeHomeConfig(t, "data_file: /nonexistent/from-file.csv\n")

	// File alone points at a missing file.
	if _, err := execute(t); err == nil || !strings.Contains(err.Error(), "from-file.csv") {
		t.Fatalf("expected config file path in error, got %v", err)
	}

	// Env beats file.
	t.Setenv("DATA_FILE", good)
	if _, err := execute(t); err != nil {
		t.Fatalf("env should override file: %v", err)
	}

	// Flag beats env.
	t.Setenv("DATA_FILE", "/nonexistent/from-env.csv")
	if _, err := execute(t, "--data", good); err != nil {
		t.Fatalf("flag should override env: %v", err)
	}
}

func TestConfigFile_Schema(t *testing.T) {
	isolateEnv(t)
	data := writeFile(t, "people.csv", "friends,id\n\"[\"\"b\"\"]\",a\n")
	cfgPath := writeFile(t, "friendgraph.yaml", "data_file: "+data+"\nschema:\n  id_column: 1\n  friends_column: 0\n")

	out, err := execute(t, "--config", cfgPath, "path", "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != "a -> b (1 hops)\n" {
		t.Errorf("output = %q", out)
	}
}

func TestConfigFile_Errors(t *testing.T) {
	isolateEnv(t)

	if _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("explicit missing config file should fail")
	}

	bad := writeFile(t, "bad.yaml", "data_file: [unterminated\n")
	if _, err := execute(t, "--config", bad); err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestFileLookup(t *testing.T) {
	yes := true
	f := &configFile{DedupeEdges: &yes, Port: 8080, CORSOrigins: []string{"http://a", "http://b"}}

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "DEDUPE_EDGES", want: "true", wantOK: true},
		{key: "PORT", want: "8080", wantOK: true},
		{key: "CORS_ORIGINS", want: "http://a,http://b", wantOK: true},
		{key: "KEEP_EMPTY_IDS", wantOK: false},
		{key: "ID_COLUMN", wantOK: false},
		{key: "UNKNOWN", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, ok := f.lookup(tc.key)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("lookup(%s) = %q, %v; want %q, %v", tc.key, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

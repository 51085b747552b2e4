package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fixtureCSV is the chain 1-2-3 in the ten-column reference layout.
const fixtureCSV = `id,name,age,city,a,b,c,d,e,friends
1,ann,30,x,,,,,,"[""2""]"
2,bob,31,y,,,,,,"[""3""]"
3,cy,32,z,,,,,,[]
`

// isolateEnv clears every configuration variable and points HOME at an empty
// directory so no host config file is read.
func isolateEnv(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"DATA_FILE", "ID_COLUMN", "FRIENDS_COLUMN", "SOURCE_NODE", "DEDUPE_EDGES",
		"KEEP_EMPTY_IDS", "LOG_LEVEL", "LOG_FORMAT", "PORT", "LISTEN_HOST", "CORS_ORIGINS",
	} {
		t.Setenv(k, "")
	}

	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

// execute runs a fresh root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()

	var out, errOut strings.Builder
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))

	_, err := root.ExecuteC()

	return out.String(), err
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/persistorai/friendgraph/internal/config"
)

var (
	flagConfig        string
	flagData          string
	flagIDColumn      int
	flagFriendsColumn int
	flagDedupe        bool
	flagKeepEmpty     bool
	flagLogLevel      string
)

func versionString() string {
	return fmt.Sprintf("friendgraph version %s", config.Version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "friendgraph",
		Short: "friendgraph analyzes degrees of separation in a friendship dataset",
		Long: "Reads a CSV of people and their friend lists, builds an undirected graph, " +
			"and reports path-length statistics and degree distributions.\n\n" +
			"Run without a subcommand to print the text report for the configured data file.",
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, "", fmtText)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default ~/.friendgraph/config.yaml)")
	pf.StringVar(&flagData, "data", "data.csv", "Input CSV file (env: DATA_FILE)")
	pf.IntVar(&flagIDColumn, "id-column", 0, "Column index of the node ID (env: ID_COLUMN)")
	pf.IntVar(&flagFriendsColumn, "friends-column", 9, "Column index of the friend list (env: FRIENDS_COLUMN)")
	pf.BoolVar(&flagDedupe, "dedupe", false, "Collapse parallel edges (env: DEDUPE_EDGES)")
	pf.BoolVar(&flagKeepEmpty, "keep-empty", false, "Keep empty friend tokens as a node (env: KEEP_EMPTY_IDS)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug|info|warn|error (env: LOG_LEVEL)")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newDistancesCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

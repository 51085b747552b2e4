package main

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/persistorai/friendgraph/internal/api"
	"github.com/persistorai/friendgraph/internal/config"
	"github.com/persistorai/friendgraph/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only analysis API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("host") {
				a.cfg.ListenHost = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Port = strconv.Itoa(port)
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			if a.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			svc, err := a.analysis(cmd)
			if err != nil {
				return err
			}

			router := api.NewRouter(cmd.Context(), &api.RouterDeps{
				Log:         a.log,
				Analysis:    svc,
				Stats:       svc,
				CORSOrigins: a.cfg.CORSOrigins,
				Version:     config.Version,
			})

			return server.New(a.cfg.Addr(), router, a.log).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Listen host (env: LISTEN_HOST)")
	cmd.Flags().IntVar(&port, "port", 3040, "Listen port (env: PORT)")

	return cmd
}

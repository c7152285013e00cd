package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rprtr258/imflux/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the counter view to browsers",
	Long: `Starts an HTTP server. Every open tab gets its own websocket session,
and all sessions share one store, so a click in any tab updates all of them.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	serverCfg := cfg.Server
	if serveAddr != "" {
		serverCfg.Addr = serveAddr
	}

	st := newStore()
	srv, err := web.New(serverCfg, st, logger)
	if err != nil {
		return err
	}

	logger.Info("starting",
		zap.String("addr", serverCfg.Addr),
		zap.Int("counter", st.State().Counter),
	)
	return srv.Run(cmd.Context())
}

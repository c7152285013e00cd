package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rprtr258/imflux/internal/config"
	"github.com/rprtr258/imflux/internal/counter"
	"github.com/rprtr258/imflux/internal/logging"
	"github.com/rprtr258/imflux/internal/store"
)

var version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "imflux",
	Short: "Counter app driven by a single store, rendered in a browser or terminal",
	Long: `imflux keeps the whole application state in one store. Views never
mutate it: they dispatch actions, a pure reducer computes the next state and
every subscribed view re-renders from it.

Run "imflux serve" for the browser view or "imflux tui" for the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the imflux version",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "imflux", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "imflux.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")

	rootCmd.AddCommand(serveCmd, tuiCmd, versionCmd)
}

// newStore creates the process-wide counter store from config.
func newStore() *counter.Store {
	return counter.NewStore(cfg.Store.InitialCounter, store.WithLogger(logger))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

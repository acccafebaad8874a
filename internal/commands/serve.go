package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifeledger/bill-importer/internal/api"
	"github.com/lifeledger/bill-importer/internal/config"
)

func newServeCommand() *cobra.Command {
	var addrFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the bill parsing HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addrFlag != "" {
				cfg.Server.Addr = addrFlag
			}

			logger := newLogger(&cfg.Log)
			slog.SetDefault(logger)

			app := api.NewApp(cfg)
			logger.Info("starting bill-importer API", "addr", cfg.Server.Addr)
			return app.Listen(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides BILLIMPORTER_SERVER_ADDR)")
	return cmd
}

func newLogger(cfg *config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

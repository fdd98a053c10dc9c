package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gg-glitch-88/meshlink/internal/gateway"
	"github.com/gg-glitch-88/meshlink/internal/state"
	"github.com/gg-glitch-88/meshlink/internal/store"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

func newGatewayCmd(a *app) *cobra.Command {
	var listen, dbPath string
	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Serve the radio over HTTP and WebSocket, reconnecting as needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				a.cfg.Gateway.ListenAddr = listen
			}
			if dbPath != "" {
				a.cfg.Gateway.DBPath = dbPath
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var backing state.Store
			if a.cfg.Gateway.DBPath != "" {
				db, err := store.Open(a.cfg.Gateway.DBPath)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := store.Migrate(db); err != nil {
					return err
				}
				a.log.Info("store opened", zap.String("path", a.cfg.Gateway.DBPath))
				backing = db
			}
			st, err := state.New(ctx, backing, a.log)
			if err != nil {
				return err
			}

			opener, err := transport.New(a.cfg.TransportOptions(), a.log)
			if err != nil {
				return err
			}
			return gateway.New(a.cfg, opener, st, a.log).Start(ctx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "HTTP listen address (default from config, \":8080\")")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default keeps state in memory)")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gg-glitch-88/meshlink/internal/config"
	"github.com/gg-glitch-88/meshlink/internal/logging"
)

// app carries global flags and what PersistentPreRunE builds from them.
type app struct {
	cfgFile   string
	transport string
	addr      string
	port      string
	ble       string
	logLevel  string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "meshlink",
		Short: "Meshtastic radio client: listen, send and serve a gateway",
		Long: `meshlink connects to a Meshtastic radio, runs the config handshake and
then streams what the radio reports. It can also send text messages,
list serial ports and run an HTTP/WebSocket gateway in front of the radio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync() //nolint:errcheck
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&a.transport, "transport", "", "link kind: tcp, serial or ble")
	pf.StringVar(&a.addr, "addr", "", "radio host[:port] (implies --transport tcp)")
	pf.StringVar(&a.port, "port", "", "serial device path (implies --transport serial)")
	pf.StringVar(&a.ble, "ble", "", "BLE name or address (implies --transport ble)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newListenCmd(a),
		newSendCmd(a),
		newPortsCmd(),
		newGatewayCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with flags
	switch {
	case a.addr != "":
		cfg.Transport.Kind = "tcp"
		cfg.Transport.Addr = a.addr
	case a.port != "":
		cfg.Transport.Kind = "serial"
		cfg.Transport.Port = a.port
	case a.ble != "":
		cfg.Transport.Kind = "ble"
		cfg.Transport.Device = a.ble
	}
	if a.transport != "" {
		cfg.Transport.Kind = a.transport
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

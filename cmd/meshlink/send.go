package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gg-glitch-88/meshlink/internal/router"
)

func newSendCmd(a *app) *cobra.Command {
	var (
		to      string
		channel uint32
		ack     bool
	)
	cmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Send a text message and disconnect",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := parseDestination(to)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			l, err := a.openLink(ctx, nil)
			if err != nil {
				return err
			}
			defer l.close()

			p, err := l.client(a.log).SendText(ctx, strings.Join(args, " "), dest, ack, channel)
			if err != nil {
				return fmt.Errorf("failed to send: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued packet %d to %s.\n", p.GetId(), dest)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "broadcast", `destination: "broadcast", "local", "!hex" or a decimal node number`)
	cmd.Flags().Uint32Var(&channel, "channel", 0, "channel index")
	cmd.Flags().BoolVar(&ack, "ack", false, "request an acknowledgement")
	return cmd
}

func parseDestination(s string) (router.Destination, error) {
	switch s {
	case "", "broadcast":
		return router.Broadcast(), nil
	case "local":
		return router.Local(), nil
	}
	var (
		n   uint64
		err error
	)
	if hex, ok := strings.CutPrefix(s, "!"); ok {
		n, err = strconv.ParseUint(hex, 16, 32)
	} else {
		n, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return router.Destination{}, fmt.Errorf("invalid destination %q", s)
	}
	return router.Node(uint32(n)), nil
}

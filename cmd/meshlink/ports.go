package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gg-glitch-88/meshlink/internal/transport"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports a radio may be attached to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := transport.SerialPorts()
			if err != nil {
				return fmt.Errorf("failed to list serial ports: %w", err)
			}
			if len(ports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No serial ports found.")
				return nil
			}
			for _, p := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

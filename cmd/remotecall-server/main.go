// Command remotecall-server accepts one client connection, traces the tag the
// client sends as an incoming remote call and exits once the telemetry has had
// time to be flushed.
//
// Usage:
//
//	remotecall-server [port=<int>]
//
// Everything else is configured through the YAML file named by
// REMOTECALL_CONFIG and environment variables; see package config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "remote call server failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remotecall-server [port=<int>]",
		Short: "Trace one incoming remote call",
		Long: `remotecall-server listens on a TCP port, accepts exactly one client, reads
the tag the client sends and reports it as an incoming remote call span. It then
waits for the span to be exported and exits.`,
		// port=<int> is not a flag; arguments are interpreted by config.ApplyArgs.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/akulinin/duochat/internal/client"
	"github.com/akulinin/duochat/internal/core"
	"github.com/akulinin/duochat/internal/log"
	"github.com/akulinin/duochat/internal/proto"
)

var (
	serverURL string
	name      string
	charID    int
	logLevel  string
	timeout   time.Duration
	interval  time.Duration
)

func main() {
	root := &cobra.Command{
		Use:           "duochat-client",
		Short:         "Terminal client for the duochat exchange",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "http://127.0.0.1:8080", "server base URL")
	root.PersistentFlags().StringVar(&name, "name", "anon", "display name prefixed to sent messages")
	root.PersistentFlags().IntVar(&charID, "char", int(core.DefaultSpeaker), "speaker id to send as")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "per-request timeout")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the server and render live state and history",
		RunE:  runWatch,
	}
	watchCmd.Flags().DurationVar(&interval, "interval", client.DefaultInterval, "poll interval")

	sendCmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Submit one message and show the refreshed state",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSend,
	}

	root.AddCommand(watchCmd, sendCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "duochat-client: %v\n", err)
		os.Exit(1)
	}
}

// connect builds the API client and runs the startup liveness probe.
// A dead server is fatal here, before any loop starts.
func connect(ctx context.Context) (*client.Client, error) {
	logger := log.New(logLevel)

	c := client.New(serverURL, timeout, logger)
	if err := c.Health(ctx); err != nil {
		return nil, fmt.Errorf("server at %s is not reachable: %w", serverURL, err)
	}
	logger.Debug().Str("client_id", c.ID()).Str("server", serverURL).Msg("connected")
	return c, nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := connect(ctx)
	if err != nil {
		return err
	}

	logger := log.New(logLevel)
	view := client.NewTermView(os.Stdout)
	poller := client.NewPoller(c, view, interval, logger)

	fmt.Printf("watching %s every %s, Ctrl+C to exit\n", serverURL, interval)
	poller.Run(ctx)
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := connect(ctx)
	if err != nil {
		return err
	}

	body := strings.Join(args, " ")
	message := proto.FormatMessage(name, body)
	if err := c.Send(ctx, message, core.SpeakerID(charID)); err != nil {
		return err
	}

	// Refresh once right away so the sender sees their own message without
	// waiting out a poll interval.
	logger := log.New(logLevel)
	view := client.NewTermView(os.Stdout)
	poller := client.NewPoller(c, view, interval, logger)
	if err := poller.Update(ctx); err != nil {
		logger.Warn().Err(err).Msg("post-send refresh failed")
	}
	return nil
}

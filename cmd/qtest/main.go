package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/timzifer/listqueue/internal/console"
	"github.com/timzifer/listqueue/internal/telemetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		bufSize int
		verbose bool
		echo    bool
	)

	cmd := &cobra.Command{
		Use:          "qtest",
		Short:        "Drive string queues with line commands read from stdin",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			c := console.New(cmd.OutOrStdout(),
				console.WithLogger(logger),
				console.WithBufSize(bufSize),
				console.WithEcho(echo),
			)
			err := c.Run(ctx, cmd.InOrStdin())
			c.Close()

			allocated, released, live := telemetry.DefaultElementStats().Snapshot()
			logger.Debug("element stats",
				slog.Uint64("allocated", allocated),
				slog.Uint64("released", released),
				slog.Int64("live", live),
			)
			if live != 0 {
				err = errors.Join(err, fmt.Errorf("qtest: %d elements still allocated", live))
			}
			return err
		},
	}

	cmd.Flags().IntVar(&bufSize, "bufsize", 1024, "size of the buffer removed values are copied into")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every command")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each command before running it")
	return cmd
}

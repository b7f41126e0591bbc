package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gointubate/pkg/store"
	"github.com/philipparndt/gointubate/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(c *cli) *cobra.Command {
	var (
		out      renderFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-render whenever a saved configuration file changes",
		Long: `Watch a saved configuration JSON file and render it to the output every time
it is written. The last good image is kept when the file cannot be decoded.`,
		Example: `  gointubate watch ~/.gointubate/intubationConfig.json -o airway.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			snap, err := store.ReadFile(path)
			if err != nil {
				return err
			}
			if err := c.write(&out, cmd.OutOrStdout(), snap); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchAndRender(ctx, c, &out, cmd.OutOrStdout(), path, debounce)
		},
	}

	out.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "wait this long after the last change")
	return cmd
}

func watchAndRender(ctx context.Context, c *cli, out *renderFlags, stdout io.Writer, path string, debounce time.Duration) error {
	c.log.Info("watching", "file", path, "output", out.output)
	return watcher.WatchSnapshot(ctx, path, debounce, c.log, func(snap store.Snapshot, err error) {
		if err != nil {
			c.log.Error("failed to read configuration", "file", path, "err", err)
			return
		}
		if err := c.write(out, stdout, snap); err != nil {
			c.log.Error("failed to render", "file", path, "err", err)
		}
	})
}

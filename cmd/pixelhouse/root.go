package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixelhouse"
)

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// newLogger creates the CLI logger writing to w at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "pixelhouse",
	})
}

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or the charm default.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "pixelhouse",
		Short:        "Render layered extent-space scenes",
		Long:         `pixelhouse records shapes from a TOML scene onto a layered canvas and composites them into an image.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			l := newLogger(cmd.ErrOrStderr(), level)
			// The library logs through slog; route it to the same handler.
			pixelhouse.SetLogger(slog.New(l))
			cmd.SetContext(withLogger(cmd.Context(), l))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("pixelhouse %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newColorsCmd())
	return root
}

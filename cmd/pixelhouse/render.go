package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixelhouse/imageio"
	"github.com/gogpu/pixelhouse/internal/scenefile"
)

func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene file to an image",
		Long: `Render a scene file to an image. The output format follows the
file extension: ` + strings.Join(imageio.Formats(), ", ") + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())
			start := time.Now()

			s, err := scenefile.Load(args[0])
			if err != nil {
				return err
			}
			c, err := s.Build()
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err := c.Save(out); err != nil {
				return err
			}
			log.Info("rendered", "scene", args[0], "output", out, "size", c.String(),
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: scene name with .png)")
	return cmd
}

func newShowCmd() *cobra.Command {
	var (
		delay    time.Duration
		maxWidth int
	)

	cmd := &cobra.Command{
		Use:   "show <scene.toml>",
		Short: "Render a scene file in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenefile.Load(args[0])
			if err != nil {
				return err
			}
			c, err := s.Build()
			if err != nil {
				return err
			}
			d := imageio.NewTerminal(cmd.OutOrStdout(), cmd.InOrStdin())
			d.MaxWidth = maxWidth
			loggerFromContext(cmd.Context()).Debug("showing", "scene", args[0], "delay", delay)
			return c.Show(d, delay)
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "how long to wait before returning (0 waits for Enter)")
	cmd.Flags().IntVar(&maxWidth, "max-width", 80, "maximum width in terminal cells (0 for no limit)")
	return cmd
}

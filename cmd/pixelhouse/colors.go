package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixelhouse/palette"
)

func newColorsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the named colors of the default palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := palette.Default()
			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			for _, name := range p.Names() {
				if filter != "" && !strings.Contains(name, filter) {
					continue
				}
				c, err := p.Lookup(name)
				if err != nil {
					return err
				}
				hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
				swatch := r.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", swatch, hex, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only list names containing this substring")
	return cmd
}

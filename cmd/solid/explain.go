package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/sghaida/solid/runner"
)

func (c *cli) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <name>",
		Short: "Render a lesson write-up to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := c.app.demos.Lookup(args[0])
			if !ok {
				return runner.UnknownDemoError{Name: args[0]}
			}
			if d.Lesson == nil {
				return fmt.Errorf("solid: demo %q has no write-up", d.Name)
			}

			rendered, err := renderMarkdown(d.Lesson(), c.styleName(), c.app.cfg.Wrap)
			if err != nil {
				return fmt.Errorf("solid: render lesson: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

// styleName picks the glamour style, forcing notty when color is off.
func (c *cli) styleName() string {
	if c.app.cfg.NoColor {
		return "notty"
	}
	return c.app.cfg.Style
}

func renderMarkdown(text, style string, wrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

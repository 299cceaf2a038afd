package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/solid/cmd/solid/ui"
)

var errNoDemoSelected = errors.New("solid: run needs at least one demo name (or --all)")

func (c *cli) newRunCmd() *cobra.Command {
	var (
		all    bool
		record string
	)

	cmd := &cobra.Command{
		Use:   "run [name...]",
		Short: "Run one or more narrated demos",
		Long: `Runs the named demos (or all of them) and writes the narration to stdout.

With --record FILE the transcript is also written to FILE atomically, so an
interrupted run never leaves a partial file behind.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if all {
				if len(args) > 0 {
					return errors.New("solid: pass demo names or --all, not both")
				}
				names = c.app.demos.Names()
			}
			if len(names) == 0 {
				return errNoDemoSelected
			}

			var transcript bytes.Buffer
			out := io.Writer(cmd.OutOrStdout())
			if record != "" {
				out = io.MultiWriter(cmd.OutOrStdout(), &transcript)
			}

			st := ui.New(c.app.cfg.NoColor)
			for i, name := range names {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if d, ok := c.app.demos.Lookup(name); ok {
					fmt.Fprintln(out, st.Header.Render(d.Name+": "+d.Principle))
				}

				c.app.log.Debug("running demo", zap.String("name", name))
				if err := c.app.demos.Run(cmd.Context(), name, out); err != nil {
					return err
				}
			}

			if record != "" {
				if err := writeFileAtomic(record, transcript.Bytes(), 0o644); err != nil {
					return fmt.Errorf("solid: record transcript: %w", err)
				}
				c.app.log.Debug("transcript recorded",
					zap.String("path", record),
					zap.Int("bytes", transcript.Len()),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every demo in catalog order")
	cmd.Flags().StringVar(&record, "record", "", "also write the transcript to FILE (atomic)")

	return cmd
}

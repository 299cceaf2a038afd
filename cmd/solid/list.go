package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/solid/cmd/solid/ui"
)

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demos in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := ui.New(c.app.cfg.NoColor)
			w := cmd.OutOrStdout()

			for _, d := range c.app.demos.All() {
				fmt.Fprintf(w, "%s  %s\n",
					st.Name.Render(fmt.Sprintf("%-4s", d.Name)),
					st.Principle.Render(d.Principle),
				)
				fmt.Fprintf(w, "      %s\n", st.Summary.Render(d.Title+". "+d.Summary))
			}
			return nil
		},
	}
}

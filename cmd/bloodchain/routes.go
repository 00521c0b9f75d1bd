package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bloodchain/portal/internal/core/domain"
)

var routesCmd = &cobra.Command{
	Use:   "routes [role]",
	Short: "Print the per-role navigation table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles := domain.Roles
		if len(args) == 1 {
			r, err := domain.ParseRole(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			roles = []domain.Role{r}
		}

		table := domain.DefaultRouteTable()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ROLE\tPATH\tNAME\tPAGE")
		for _, r := range roles {
			for _, e := range table.Entries(r) {
				page := string(e.Page)
				if e.Placeholder() {
					page = "(placeholder)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r, r.BasePath()+e.Path, e.Name, page)
			}
		}
		return w.Flush()
	},
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/authcorp/libs/go/optics/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the law suites",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SUITE\tKIND\tLAWS")
		for _, s := range catalog.Suites() {
			fmt.Fprintf(w, "%s\t%s\t%d\n", s.Name, s.Kind, len(s.Laws))
		}
		return w.Flush()
	},
}

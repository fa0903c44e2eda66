package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func getCmdDirectives(c *rootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "directives",
		Short: "List the directives of the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(c)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.gs.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tKIND\tSELECTOR\tSERVICES")
			for _, d := range registry.Directives() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Type, d.Kind, d.Selector, strings.Join(d.ComponentServices, ","))
			}
			return w.Flush()
		},
	}
}

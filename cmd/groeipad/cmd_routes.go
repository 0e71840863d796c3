package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// routesCmd lists the routes the server would serve
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List routes and their step chains",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func runRoutes(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cat.Len() == 0 {
		fmt.Fprintln(out, "no routes")
		return nil
	}

	for _, route := range cat.Routes() {
		fmt.Fprintf(out, "%s\t%s (%d steps)\n", route.ID, route.Name, len(route.Steps))

		ids := make([]string, 0, len(route.Steps))
		for _, step := range route.Steps {
			ids = append(ids, step.ID)
		}
		fmt.Fprintf(out, "\t%s\n", strings.Join(ids, " -> "))

		for _, step := range route.Steps {
			next := "end"
			if n, ok := route.Next(step); ok {
				next = n.ID
			}
			fmt.Fprintf(out, "\t  %-28s %-36s next: %s\n", step.ID, step.Title, next)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheat/core"
)

func (a *app) materialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the built-in material catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "name\tk W/(m·K)\tρ kg/m³\tcp J/(kg·K)\tα")
			for _, m := range core.Catalog() {
				fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\n", m.Name, m.K, m.Rho, m.Cp,
					humanize.SIWithDigits(m.Alpha(), 3, "m²/s"))
			}
			return tw.Flush()
		},
	}
}

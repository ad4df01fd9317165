package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/inspect"
	"github.com/katalvlaran/lvheat/scenario"
)

func (a *app) inspectCmd() *cobra.Command {
	var bridge []string
	cmd := &cobra.Command{
		Use:   "inspect SCENARIO",
		Short: "Report the topology and stability of a scenario",
		Long: `Build a scenario without running it and report vertex and edge counts,
total heat capacity, connected components, islands (components without a
boundary vertex) and the largest stable explicit time step.

With --bridge FROM,TO it also prints the chain of least thermal resistance
between two vertices.

Examples:
  heatsim inspect rooms.yaml --bridge outside,office`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			m, err := s.Build(builder.WithLogger(a.log))
			if err != nil {
				return err
			}
			r, err := inspect.Inspect(m.Graph)
			if err != nil {
				return err
			}
			if _, err := r.WriteTo(a.stdout); err != nil {
				return err
			}
			verdict := "stable"
			if !r.Stable(m.Run.Timestep) {
				verdict = "UNSTABLE"
			}
			if _, err := fmt.Fprintf(a.stdout, "run dt      %g s (%s)\n", m.Run.Timestep, verdict); err != nil {
				return err
			}
			if len(bridge) == 0 {
				return nil
			}
			if len(bridge) != 2 {
				return fmt.Errorf("--bridge: want FROM,TO, got %d names", len(bridge))
			}
			b, err := inspect.ThermalBridge(m.Graph, bridge[0], bridge[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "bridge      %s\n            R %.4g K/W, UA %.4g W/K\n",
				strings.Join(b.Names, " → "), b.Resistance, b.Conductance())
			return err
		},
	}
	cmd.Flags().StringSliceVar(&bridge, "bridge", nil, "Report the least-resistance chain between two vertices: FROM,TO")

	return cmd
}

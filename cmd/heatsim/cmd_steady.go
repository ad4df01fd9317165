package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/scenario"
	"github.com/katalvlaran/lvheat/steady"
)

func (a *app) steadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steady SCENARIO",
		Short: "Solve a scenario for its equilibrium temperatures",
		Long: `Solve the conductance system of a scenario directly, with sources at
their current output and boundaries at their current temperature, and print
the temperature of every vertex. The HVAC unit keeps its configured state.`,
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
			if _, err := steady.SolveAndApply(m.Graph, steady.WithLogger(a.log)); err != nil {
				return err
			}
			writeTemperatures(a.stdout, m.Graph.Vertices())
			return nil
		},
	}
}

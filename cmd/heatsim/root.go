package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	stdout, stderr io.Writer

	logFormat string
	logLevel  string

	log   *slog.Logger
	runID string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "heatsim",
		Short: "Simulate heat conduction through lumped thermal networks",
		Long: `heatsim builds thermal networks from YAML scenarios or built-in house
models and steps them with an explicit finite-difference solver.

Subcommands:
  run        - run a scenario, under thermostat control when it has HVAC
  inspect    - report components, islands and the stable time step
  steady     - solve for the equilibrium temperatures
  house      - run one of the built-in house models
  materials  - list the material catalog`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lg, err := newLogger(a.stderr, a.logFormat, a.logLevel)
			if err != nil {
				return err
			}
			a.runID = uuid.NewString()[:8]
			a.log = lg.With(slog.String("run_id", a.runID), slog.String("cmd", cmd.Name()))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", formatAuto,
		"Log format: auto (text on a terminal, json otherwise), text or json")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn",
		"Minimum log level: debug, info, warn or error")

	root.AddCommand(
		a.runCmd(),
		a.inspectCmd(),
		a.steadyCmd(),
		a.houseCmd(),
		a.materialsCmd(),
	)

	return root
}

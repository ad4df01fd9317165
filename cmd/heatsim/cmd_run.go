package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheat/builder"
	"github.com/katalvlaran/lvheat/control"
	"github.com/katalvlaran/lvheat/core"
	"github.com/katalvlaran/lvheat/inspect"
	"github.com/katalvlaran/lvheat/scenario"
	"github.com/katalvlaran/lvheat/simulate"
	"github.com/katalvlaran/lvheat/trace"
)

// runFlags are shared by run and house.
type runFlags struct {
	plot        string
	csv         string
	metricsAddr string
	cycles      int
	warmup      int
	workers     int
	hourly      bool
	force       bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.plot, "plot", "", "Write a temperature chart to this file (.png, .svg or .pdf)")
	fs.StringVar(&f.csv, "csv", "", "Write the recorded temperatures as CSV to this file")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running (e.g. :9090)")
	fs.IntVar(&f.cycles, "cycles", 0, "Override the number of control intervals")
	fs.IntVar(&f.warmup, "warmup", 0, "Override the number of warm-up steps")
	fs.IntVar(&f.workers, "workers", 0, "Override the number of solver goroutines")
	fs.BoolVar(&f.hourly, "hourly", false, "Print HVAC energy per simulated hour")
	fs.BoolVar(&f.force, "force", false, "Run even if the time step exceeds the stability bound")
}

// apply copies changed flags into s.Run.
func (f *runFlags) apply(cmd *cobra.Command, s *scenario.Scenario) error {
	fs := cmd.Flags()
	if fs.Changed("cycles") {
		s.Run.Cycles = f.cycles
	}
	if fs.Changed("warmup") {
		w := f.warmup
		s.Run.Warmup = &w
	}
	if fs.Changed("workers") {
		s.Run.Workers = f.workers
	}
	return s.Validate()
}

func (a *app) runCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run SCENARIO",
		Short: "Run a scenario file",
		Long: `Run a YAML scenario. Scenarios with an hvac section run under thermostat
control and print a duty-cycle and energy summary; others run open loop and
print the final temperatures.

Examples:
  heatsim run solar.yaml --plot day.png --hourly
  heatsim run rooms.yaml --cycles 60 --csv rooms.csv --metrics-addr :9090`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if err := f.apply(cmd, s); err != nil {
				return err
			}
			return a.execute(cmd.Context(), s, f, s.HVAC != nil)
		},
	}
	f.register(cmd)

	return cmd
}

// execute builds s and runs it closed or open loop, then writes the
// requested artifacts.
func (a *app) execute(ctx context.Context, s *scenario.Scenario, f *runFlags, closed bool) error {
	start := time.Now()
	m, err := s.Build(builder.WithLogger(a.log))
	if err != nil {
		return err
	}
	report, err := inspect.Inspect(m.Graph)
	if err != nil {
		return err
	}
	if !report.Stable(m.Run.Timestep) {
		msg := fmt.Sprintf("timestep %g s exceeds the stability bound %.3g s set by %q",
			m.Run.Timestep, report.StableTimestep, report.Name(report.Stiffest))
		if !f.force {
			return errors.New(msg + " (use --force to run anyway)")
		}
		a.log.Warn(msg)
	}
	if len(report.Islands) > 0 {
		a.log.Warn("graph has islands without a boundary", slog.Int("islands", len(report.Islands)))
	}

	rec, err := trace.NewRecorder(recorded(m)...)
	if err != nil {
		return err
	}
	var metrics *trace.Metrics
	if f.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = trace.NewMetrics(reg, recorded(m)...)
		stop, err := a.serveMetrics(f.metricsAddr, reg)
		if err != nil {
			return err
		}
		defer stop()
	}

	a.log.Info("run started",
		slog.String("scenario", s.Name),
		slog.Int("vertices", m.Graph.VertexCount()),
		slog.Int("edges", m.Graph.EdgeCount()),
		slog.Bool("closed_loop", closed))
	simOpts := simulate.WithLogger(a.log)

	if closed {
		observe := []func(control.Sample){rec.ControlObserver()}
		if metrics != nil {
			observe = append(observe, metrics.Observe)
		}
		loop, err := m.Loop(
			control.WithLogger(a.log),
			control.WithObserver(trace.Tee(observe...)),
			control.WithSimulateOptions(simOpts),
		)
		if err != nil {
			return err
		}
		sum, err := loop.Run(ctx)
		if sum != nil {
			writeSummary(a.stdout, s.Name, a.runID, sum, f.hourly)
		}
		if err != nil {
			return err
		}
	} else {
		observe := func(t float64) {
			rec.Record(t)
			if metrics != nil {
				metrics.ObserveVertices()
				metrics.SimulatedSeconds.Set(t)
			}
		}
		if err := m.Simulate(ctx, observe, simOpts); err != nil {
			return err
		}
		writeTemperatures(a.stdout, m.Graph.Vertices())
	}
	a.log.Info("run finished", slog.Duration("wall", time.Since(start)), slog.Int("samples", rec.Len()))

	return writeArtifacts(rec, f, s.Name)
}

// recorded is run.record, or the sensor and outdoor air, or every vertex.
func recorded(m *scenario.Model) []*core.Vertex {
	if len(m.Record) > 0 {
		return m.Record
	}
	if m.House != nil {
		return []*core.Vertex{m.House.Interior, m.House.Outside}
	}
	if m.Sensor != nil {
		return []*core.Vertex{m.Sensor}
	}
	return m.Graph.Vertices()
}

func writeArtifacts(rec *trace.Recorder, f *runFlags, title string) error {
	if f.csv != "" {
		file, err := os.Create(f.csv)
		if err != nil {
			return err
		}
		if err := rec.WriteCSV(file); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}
	if f.plot != "" {
		if err := rec.WritePlot(f.plot, title); err != nil {
			return err
		}
	}
	return nil
}

// serveMetrics exposes reg on addr/metrics until the returned stop is called.
func (a *app) serveMetrics(addr string, reg *prometheus.Registry) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server", slog.String("error", err.Error()))
		}
	}()
	a.log.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

func writeSummary(w io.Writer, name, runID string, s *control.Summary, hourly bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	interval := time.Duration(s.Interval * float64(time.Second))
	fmt.Fprintf(tw, "scenario\t%s\t(run %s)\n", name, runID)
	fmt.Fprintf(tw, "cycles\t%s × %v\t\n", humanize.Comma(int64(s.Cycles)), interval)
	fmt.Fprintf(tw, "duty cycle\t%.1f%%\t(%s cycles on)\n", 100*s.DutyCycle(), humanize.Comma(int64(s.OnCycles)))
	if s.Cycles > 0 {
		fmt.Fprintf(tw, "sensed\t%.2f K\t(min %.2f K, max %.2f K)\n", s.Final, s.Min, s.Max)
	}
	fmt.Fprintf(tw, "switches\t%d\t\n", s.Switches)
	fmt.Fprintf(tw, "energy\t%s kWh\t\n", humanize.FtoaWithDigits(s.TotalKWh(), 4))
	if hourly && s.Interval > 0 {
		perHour := int(math.Round(3600 / s.Interval))
		for i, e := range s.EnergyKWh(perHour) {
			fmt.Fprintf(tw, "  hour %d\t%s kWh\t\n", i, humanize.FtoaWithDigits(e, 4))
		}
	}
	_ = tw.Flush()
}

func writeTemperatures(w io.Writer, vs []*core.Vertex) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "vertex\tkind\tK\t°C")
	for _, v := range vs {
		t := v.Temperature()
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.2f\n", v.Name(), v.Kind(), t, t-273.15)
	}
	_ = tw.Flush()
}

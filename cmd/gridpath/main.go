// Command gridpath runs one A* search over a YAML-described grid scenario
// and prints the route cost. With -metrics it also dumps the search counters
// in Prometheus text format.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/waypoint/astar"
	"github.com/katalvlaran/waypoint/gridgraph"
	"github.com/katalvlaran/waypoint/internal/config"
	"github.com/katalvlaran/waypoint/searchmetrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "scenario.yaml", "Path to scenario file")
	dumpMetrics := fs.Bool("metrics", false, "Print search metrics in Prometheus text format")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gridpath",
		Level:  hclog.Info,
		Output: stderr,
	})

	sc, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load scenario", "path", *configPath, "error", err)
		return 1
	}
	logger.SetLevel(hclog.LevelFromString(sc.Logging.Level))

	gg, err := gridgraph.NewGridGraph(sc.Grid, sc.GridOptions())
	if err != nil {
		logger.Error("failed to build grid", "error", err)
		return 1
	}
	start, goal := sc.StartLocation(), sc.GoalLocation()
	logger.Debug("loaded scenario", "width", gg.Width, "height", gg.Height,
		"start", start, "goal", goal, "heuristic", sc.Heuristic)

	reg := prometheus.NewRegistry()
	metrics := searchmetrics.New(reg)

	res, err := search(ctx, logger, gg, sc, metrics)
	metrics.Observe(res, err)

	code := 0
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "cost=%g expanded=%d steps=%d\n", res.Cost, res.Expanded, steps(res.Goal))
	case errors.Is(err, astar.ErrNoPath):
		logger.Warn("goal unreachable", "start", start, "goal", goal)
		fmt.Fprintln(stdout, "no path")
		code = 1
	default:
		logger.Error("search failed", "error", err)
		code = 1
	}

	if *dumpMetrics {
		if err := writeMetrics(stdout, reg); err != nil {
			logger.Error("failed to write metrics", "error", err)
			return 1
		}
	}
	return code
}

func search(ctx context.Context, logger hclog.Logger, gg *gridgraph.GridGraph, sc *config.Scenario, m *searchmetrics.Metrics) (*astar.Result, error) {
	start, goal := sc.StartLocation(), sc.GoalLocation()

	// Islands are labelled once; different islands cannot be joined, so skip
	// the search entirely.
	if gg.Contains(start) && gg.Contains(goal) && !gg.Connected(start, goal) {
		logger.Debug("start and goal lie on different islands")
		return &astar.Result{}, astar.ErrNoPath
	}

	opts := append(m.Options(),
		astar.WithContext(ctx),
		astar.WithMaxExpansions(sc.MaxExpansions),
	)
	if h := heuristicFor(sc.Heuristic, minStepCost(sc.Grid, *sc.LandThreshold)); h != nil {
		opts = append(opts, astar.WithHeuristic(h))
	}
	if sc.Reopening {
		opts = append(opts, astar.WithReopening())
	}
	if sc.Heuristic == config.HeuristicManhattan && sc.Connectivity == 8 {
		logger.Warn("manhattan overestimates on 8-connected grids; route may not be optimal")
	}
	if logger.IsTrace() {
		opts = append(opts, astar.WithOnClose(func(w *astar.Waypoint) {
			logger.Trace("closed", "loc", w.Location(), "g", w.PreviousCost(), "f", w.TotalCost())
		}))
	}

	return astar.Search(gg, start, goal, opts...)
}

// steps counts the moves on the route ending at w.
func steps(w *astar.Waypoint) int {
	n := 0
	for ; w != nil && w.Previous() != nil; w = w.Previous() {
		n++
	}
	return n
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	loadPath := flag.String("load", "", "Aquarium file to load before running")
	savePath := flag.String("save", "", "Aquarium file to write after running")
	addTypes := flag.String("add", "", "Comma-separated item types to add (e.g. beta,castle)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	ticks := flag.Int("ticks", 0, "Simulation ticks to run")
	dt := flag.Float64("dt", 0, "Seconds per tick (0 = use config)")
	logStats := flag.Bool("log-stats", false, "Output summaries via slog")
	trace := flag.Bool("trace", false, "Write per-item rows to trace.csv every tick")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	metricsAddr := flag.String("metrics-addr", "", "Serve prometheus metrics on this address (e.g. :9090)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var metrics *telemetry.Metrics
	if *metricsAddr != "" {
		metrics = telemetry.NewMetrics()
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server stopped", "addr", *metricsAddr, "error", err)
			}
		}()
	}

	g, err := game.NewGameWithOptions(game.Options{
		Seed:       *seed,
		OutputDir:  *outputDir,
		Trace:      *trace,
		LogStats:   *logStats,
		Metrics:    metrics,
		Logger:     logger,
		TickLength: *dt,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	if err := run(g, *loadPath, *addTypes, *ticks, *savePath); err != nil {
		g.Unload()
		os.Exit(1)
	}
	if err := g.Unload(); err != nil {
		slog.Error("failed to close outputs", "error", err)
		os.Exit(1)
	}
}

func run(g *game.Game, loadPath, addTypes string, ticks int, savePath string) error {
	if loadPath != "" {
		if err := g.Load(loadPath); err != nil {
			return err
		}
	}

	if addTypes != "" {
		if err := g.AddItems(strings.Split(addTypes, ",")); err != nil {
			slog.Error("failed to add items", "error", err)
			return err
		}
	}

	slog.Info("starting headless simulation", "ticks", ticks, "items", g.Aquarium().Len())
	for i := 0; i < ticks; i++ {
		g.UpdateHeadless()
	}
	slog.Info("simulation finished", "tick", g.Tick(), "census", g.Aquarium().Census())

	if savePath != "" {
		if err := g.Save(savePath); err != nil {
			return err
		}
	}
	return nil
}

// Package game drives an aquarium without a window: it applies ticks, adds
// and persists items, and feeds the telemetry outputs.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/aquarium/aquarium"
	"github.com/pthm-cable/aquarium/assets"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Options configures a Game.
type Options struct {
	Config     *config.Config // nil = config.Cfg()
	Seed       uint64         // 0 = time-based
	OutputDir  string         // empty = no CSV output
	Trace      bool           // write per-item rows every tick
	LogStats   bool           // log summaries via slog
	Metrics    *telemetry.Metrics
	Logger     *slog.Logger
	TickLength float64 // seconds per tick, 0 = config motion.dt
}

// Game holds the aquarium and its run outputs.
type Game struct {
	cfg    *config.Config
	aq     *aquarium.Aquarium
	logger *slog.Logger

	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	metrics       *telemetry.Metrics

	// State
	tick     int
	dt       float64
	trace    bool
	logStats bool
}

// NewGameWithOptions creates a game with an empty aquarium.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	dt := opts.TickLength
	if dt <= 0 {
		dt = cfg.Motion.DT
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		aq: aquarium.New(aquarium.Options{
			Config:  cfg,
			Catalog: assets.New(cfg.Assets),
			Seed:    seed,
			Logger:  logger,
		}),
		metrics:  opts.Metrics,
		dt:       dt,
		trace:    opts.Trace || cfg.Telemetry.Trace,
		logStats: opts.LogStats,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g.collector = telemetry.NewCollector(om.RunID(), cfg.Telemetry.SummaryEvery, dt)

	logger.Info("game created",
		"seed", seed,
		"dt", dt,
		"output_dir", om.Dir(),
		"canvas_w", cfg.Canvas.Width,
		"canvas_h", cfg.Canvas.Height,
	)
	return g, nil
}

// Aquarium returns the driven aquarium.
func (g *Game) Aquarium() *aquarium.Aquarium { return g.aq }

// Tick returns the number of ticks applied.
func (g *Game) Tick() int { return g.tick }

// AddItems creates and adds one item per tag. Unknown tags are reported
// together after the known ones have been added.
func (g *Game) AddItems(tags []string) error {
	var unknown []string
	for _, tag := range tags {
		item, ok := g.aq.Create(tag)
		if !ok {
			unknown = append(unknown, tag)
			continue
		}
		g.aq.Add(item)
		g.logger.Debug("item added", "type", tag, "x", item.X(), "y", item.Y())
	}
	g.metrics.SetCensus(g.aq.Census())

	if len(unknown) > 0 {
		return fmt.Errorf("unknown item types %v (known: %v)", unknown, g.aq.Registry().Tags())
	}
	return nil
}

// UpdateHeadless applies one simulation tick.
func (g *Game) UpdateHeadless() {
	if g.tick == 0 {
		g.collector.Observe(g.aq)
	}

	g.aq.Update(g.dt)
	g.tick++

	g.collector.Observe(g.aq)
	g.metrics.Tick()
	g.writeTrace()
	g.flushTelemetry()
}

// Unload flushes the last partial window and closes outputs.
func (g *Game) Unload() error {
	if g.collector.Pending(g.tick) {
		g.emitSummary(g.collector.Flush(g.tick, g.aq))
	}
	return g.outputManager.Close()
}

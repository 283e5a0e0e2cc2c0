package game

import (
	"github.com/pthm-cable/aquarium/telemetry"
)

// flushTelemetry checks if the summary window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}
	g.emitSummary(g.collector.Flush(g.tick, g.aq))
}

func (g *Game) emitSummary(stats telemetry.SummaryRecord) {
	g.metrics.SetCensus(g.aq.Census())

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if err := g.outputManager.WriteSummary(stats); err != nil {
		g.logger.Error("failed to write summary", "error", err)
	}
}

// writeTrace records every item after the current tick.
func (g *Game) writeTrace() {
	if !g.trace || g.outputManager == nil {
		return
	}
	records := telemetry.BuildTrace(g.tick, float64(g.tick)*g.dt, g.aq)
	if err := g.outputManager.WriteTrace(records); err != nil {
		g.logger.Error("failed to write trace", "error", err)
	}
}

package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SummaryRecord holds aggregated state of the aquarium over a window of ticks.
type SummaryRecord struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Item counts at window end
	Items  int `csv:"items"`
	Beta   int `csv:"beta"`
	Sparty int `csv:"sparty"`
	Stinky int `csv:"stinky"`
	Castle int `csv:"castle"`
	Other  int `csv:"other"`

	// Motion during the window
	Mirrored int `csv:"mirrored"` // Fish facing left at window end
	Bounces  int `csv:"bounces"`  // Edge bounces observed during the window

	// Speed distribution of fish at window end (pixels/sec)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// ComputeSpeedStats calculates mean, standard deviation and percentiles of speeds.
// The standard deviation of fewer than two values is 0.
func ComputeSpeedStats(values []float64) (mean, std, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std = stat.MeanStdDev(sorted, nil)
	if n < 2 || math.IsNaN(std) {
		std = 0
	}
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s SummaryRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("items", s.Items),
		slog.Int("beta", s.Beta),
		slog.Int("sparty", s.Sparty),
		slog.Int("stinky", s.Stinky),
		slog.Int("castle", s.Castle),
		slog.Int("other", s.Other),
		slog.Int("mirrored", s.Mirrored),
		slog.Int("bounces", s.Bounces),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}

// LogStats logs the summary using slog.
func (s SummaryRecord) LogStats() {
	slog.Info("summary", "stats", s)
}

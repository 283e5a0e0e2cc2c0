package telemetry

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/aquarium"
)

// Collector accumulates bounce events within windows of ticks and produces
// SummaryRecords.
type Collector struct {
	runID               string
	windowDurationTicks int
	dt                  float64

	// Current window tracking
	windowStartTick int
	bounces         int

	// Velocity sign per fish at the last Observe, for bounce detection.
	// Keyed by the full entity so a reused id starts fresh.
	lastSign map[ecs.Entity][2]int8
}

// NewCollector creates a new summary collector.
// windowTicks: ticks per summary window
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(runID string, windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		runID:               runID,
		windowDurationTicks: windowTicks,
		dt:                  dt,
		lastSign:            make(map[ecs.Entity][2]int8),
	}
}

// Observe records the fish velocities after a tick, counting direction
// reversals as bounces. Fish no longer in the aquarium are forgotten.
func (c *Collector) Observe(aq *aquarium.Aquarium) {
	signs := make(map[ecs.Entity][2]int8, len(c.lastSign))
	for _, item := range aq.Items() {
		s, ok := item.(aquarium.Swimmer)
		if !ok {
			continue
		}
		vx, vy := s.Speed()
		sign := [2]int8{signOf(vx), signOf(vy)}
		e := item.Entity()

		if prev, seen := c.lastSign[e]; seen {
			if prev[0] != 0 && sign[0] == -prev[0] {
				c.bounces++
			}
			if prev[1] != 0 && sign[1] == -prev[1] {
				c.bounces++
			}
		}
		signs[e] = sign
	}
	c.lastSign = signs
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Pending reports whether ticks have passed since the last flush.
func (c *Collector) Pending(currentTick int) bool {
	return currentTick > c.windowStartTick
}

// Flush produces a SummaryRecord for the aquarium state and resets counters
// for the next window.
func (c *Collector) Flush(currentTick int, aq *aquarium.Aquarium) SummaryRecord {
	census := aq.Census()

	rec := SummaryRecord{
		RunID:           c.runID,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Items:  aq.Len(),
		Beta:   census[aquarium.TagBeta],
		Sparty: census[aquarium.TagSparty],
		Stinky: census[aquarium.TagStinky],
		Castle: census[aquarium.TagCastle],

		Bounces: c.bounces,
	}
	rec.Other = aq.Len() - rec.Beta - rec.Sparty - rec.Stinky - rec.Castle
	if rec.Other < 0 {
		rec.Other = 0
	}

	var speeds []float64
	for _, item := range aq.Items() {
		s, ok := item.(aquarium.Swimmer)
		if !ok {
			continue
		}
		vx, vy := s.Speed()
		speeds = append(speeds, r2.Norm(r2.Vec{X: vx, Y: vy}))
		if item.Mirrored() {
			rec.Mirrored++
		}
	}
	rec.SpeedMean, rec.SpeedStd, rec.SpeedP50, rec.SpeedP90 = ComputeSpeedStats(speeds)

	// Reset for next window
	c.windowStartTick = currentTick
	c.bounces = 0

	return rec
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int {
	return c.windowDurationTicks
}

func signOf(v float64) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

package telemetry

import "github.com/pthm-cable/aquarium/aquarium"

// TraceRecord is one item's state after a tick.
type TraceRecord struct {
	Tick       int     `csv:"tick"`
	SimTimeSec float64 `csv:"sim_time"`
	Index      int     `csv:"index"` // Position in drawing order, 0 = back
	Entity     uint32  `csv:"entity"`
	Type       string  `csv:"type"`
	X          float64 `csv:"x"`
	Y          float64 `csv:"y"`
	SpeedX     float64 `csv:"x_speed"`
	SpeedY     float64 `csv:"y_speed"`
	Mirrored   bool    `csv:"mirrored"`
}

// BuildTrace returns one record per item in drawing order.
func BuildTrace(tick int, simTime float64, aq *aquarium.Aquarium) []TraceRecord {
	items := aq.Items()
	records := make([]TraceRecord, 0, len(items))
	for i, item := range items {
		rec := TraceRecord{
			Tick:       tick,
			SimTimeSec: simTime,
			Index:      i,
			Entity:     uint32(item.Entity().ID()),
			Type:       item.Type(),
			X:          item.X(),
			Y:          item.Y(),
			Mirrored:   item.Mirrored(),
		}
		if s, ok := item.(aquarium.Swimmer); ok {
			rec.SpeedX, rec.SpeedY = s.Speed()
		}
		records = append(records, rec)
	}
	return records
}

package components

import "gonum.org/v1/gonum/spatial/r2"

// Position is an item's center on the canvas.
type Position struct {
	X, Y float64
}

// Vec returns the position as a gonum vector.
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Velocity is a fish's speed in pixels per second.
type Velocity struct {
	X, Y float64
}

// Vec returns the velocity as a gonum vector.
func (v Velocity) Vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Mirror is the horizontal flip flag used when drawing.
type Mirror struct {
	On bool
}

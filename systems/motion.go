// Package systems contains the per-tick behaviors applied to aquarium items.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/components"
)

// Bounds is the region fish swim in.
type Bounds struct {
	Width, Height float64
	Margin        float64 // Fish turn around this far inside each edge
}

// Swim advances pos by vel over elapsed seconds, then turns the fish around
// when it has reached the edge of b. halfLength is half the image width and
// is used on both axes. Only horizontal turns change the mirror flag.
func Swim(pos *components.Position, vel *components.Velocity, mirror *components.Mirror, halfLength float64, b Bounds, elapsed float64) {
	next := r2.Add(pos.Vec(), r2.Scale(elapsed, vel.Vec()))
	pos.X, pos.Y = next.X, next.Y

	if vel.X > 0 && pos.X >= b.Width-b.Margin-halfLength {
		vel.X = -vel.X
		mirror.On = true
	} else if vel.X < 0 && pos.X <= b.Margin+halfLength {
		vel.X = -vel.X
		mirror.On = false
	}

	if vel.Y > 0 && pos.Y >= b.Height-b.Margin-halfLength {
		vel.Y = -vel.Y
	} else if vel.Y < 0 && pos.Y <= b.Margin+halfLength {
		vel.Y = -vel.Y
	}
}

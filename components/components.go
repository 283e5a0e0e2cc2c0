// Package components defines the ECS components that hold aquarium item state.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Mask reports whether a pixel of an item's image is drawn.
// Coordinates are relative to the top-left corner of the image.
type Mask interface {
	Opaque(x, y int) bool
}

// Footprint is the visual extent of an item, taken from its image.
type Footprint struct {
	Width  float64
	Height float64
	Mask   Mask // nil means the whole box is solid
}

// Box returns the axis-aligned box of the footprint centered on c.
func (f Footprint) Box(c r2.Vec) r2.Box {
	half := r2.Vec{X: f.Width / 2, Y: f.Height / 2}
	return r2.Box{Min: r2.Sub(c, half), Max: r2.Add(c, half)}
}

// Kind carries the persistence tag of an item ("beta", "castle", ...).
// Untagged base items have an empty tag.
type Kind struct {
	Tag string
}

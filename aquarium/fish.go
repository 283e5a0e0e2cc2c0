package aquarium

import (
	"github.com/beevik/etree"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
)

// Fish is an item that swims around the aquarium, bouncing off its edges.
type Fish struct {
	*Base
}

// NewFish creates an untagged fish using the given image.
// Its speed is drawn from the aquarium's random stream.
func NewFish(a *Aquarium, asset string) *Fish {
	return newFish(a, asset, "")
}

func newFish(a *Aquarium, asset, tag string) *Fish {
	f := &Fish{Base: newBase(a, asset, tag)}

	m := a.cfg.Motion
	vel := components.Velocity{
		X: a.random.Uniform(m.MinSpeedX, m.MaxSpeedX),
		Y: a.random.Uniform(m.MinSpeedX, m.MaxSpeedX),
	}
	a.store.vel.Add(f.entity, &vel)
	return f
}

// SetSpeed sets the fish speed in pixels per second.
func (f *Fish) SetSpeed(x, y float64) {
	v := f.velocity()
	v.X, v.Y = x, y
}

// Speed returns the fish speed in pixels per second.
func (f *Fish) Speed() (x, y float64) {
	v := f.velocity()
	return v.X, v.Y
}

// Update moves the fish by its speed times elapsed seconds.
func (f *Fish) Update(elapsed float64) {
	if !f.alive() {
		return
	}
	s := f.aquarium.store
	systems.Swim(
		s.pos.Get(f.entity),
		s.vel.Get(f.entity),
		s.mirror.Get(f.entity),
		f.Width()/2,
		f.aquarium.bounds(),
		elapsed,
	)
}

// XMLSave adds the fish speed to the base item attributes.
func (f *Fish) XMLSave(parent *etree.Element) *etree.Element {
	node := f.Base.XMLSave(parent)
	vx, vy := f.Speed()
	node.CreateAttr("x-speed", formatFloat(vx))
	node.CreateAttr("y-speed", formatFloat(vy))
	return node
}

// XMLLoad reads the base item attributes and the fish speed.
func (f *Fish) XMLLoad(node *etree.Element) {
	f.Base.XMLLoad(node)
	f.SetSpeed(attrFloat(node, "x-speed"), attrFloat(node, "y-speed"))
}

func (f *Fish) velocity() *components.Velocity {
	if !f.alive() {
		return &components.Velocity{}
	}
	return f.aquarium.store.vel.Get(f.entity)
}

// Swimmer is an item with a speed.
type Swimmer interface {
	Item
	Speed() (x, y float64)
	SetSpeed(x, y float64)
}

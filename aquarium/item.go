package aquarium

import (
	"github.com/beevik/etree"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/components"
)

// Item is anything that can be placed in an aquarium.
//
// An item is a handle to state owned by its aquarium. Once the item is
// removed or the aquarium cleared the handle is dead: getters return zero
// values, setters do nothing and HitTest never matches.
type Item interface {
	// Aquarium returns the aquarium the item was created for.
	Aquarium() *Aquarium
	// Entity is the handle of the item's state in the aquarium's world.
	Entity() ecs.Entity
	// Type is the tag written to the type attribute on save.
	Type() string
	// Asset is the image name the footprint came from.
	Asset() string

	X() float64
	Y() float64
	SetLocation(x, y float64)
	Mirrored() bool
	SetMirror(m bool)
	Width() float64
	Height() float64

	// HitTest reports whether (x, y) lands on the item.
	HitTest(x, y float64) bool
	// DistanceTo is the distance between the two item centers.
	// Values below 1 mean the items overlap.
	DistanceTo(other Item) float64
	// Update advances the item by elapsed seconds.
	Update(elapsed float64)

	// XMLSave appends an item element to parent and returns it so
	// wrappers can add their own attributes.
	XMLSave(parent *etree.Element) *etree.Element
	// XMLLoad reads the item's attributes back from node.
	XMLLoad(node *etree.Element)
}

// Base is the state and behavior shared by every item.
type Base struct {
	aquarium *Aquarium
	entity   ecs.Entity
	asset    string
}

// newBase creates the item's entity with its footprint resolved from asset.
func newBase(a *Aquarium, asset, tag string) *Base {
	fp := a.footprint(asset)
	e := a.store.create(fp, tag)
	return &Base{aquarium: a, entity: e, asset: asset}
}

// Aquarium implements Item.
func (b *Base) Aquarium() *Aquarium { return b.aquarium }

// Entity implements Item.
func (b *Base) Entity() ecs.Entity { return b.entity }

// Asset implements Item.
func (b *Base) Asset() string { return b.asset }

// Type implements Item.
func (b *Base) Type() string {
	if !b.alive() {
		return ""
	}
	return b.aquarium.store.kind.Get(b.entity).Tag
}

// X is the x location of the item center in pixels.
func (b *Base) X() float64 { return b.position().X }

// Y is the y location of the item center in pixels.
func (b *Base) Y() float64 { return b.position().Y }

// SetLocation moves the item. No bounds are enforced.
func (b *Base) SetLocation(x, y float64) {
	p := b.position()
	p.X, p.Y = x, y
}

// Mirrored reports whether the image is drawn flipped horizontally.
func (b *Base) Mirrored() bool {
	if !b.alive() {
		return false
	}
	return b.aquarium.store.mirror.Get(b.entity).On
}

// SetMirror sets the horizontal flip flag.
func (b *Base) SetMirror(m bool) {
	if !b.alive() {
		return
	}
	b.aquarium.store.mirror.Get(b.entity).On = m
}

// Width is the footprint width in pixels.
func (b *Base) Width() float64 { return b.footprint().Width }

// Height is the footprint height in pixels.
func (b *Base) Height() float64 { return b.footprint().Height }

// HitTest implements Item. The footprint box is centered on the item; when
// the image has a mask the point must also fall on an opaque pixel.
func (b *Base) HitTest(x, y float64) bool {
	if !b.alive() {
		return false
	}
	fp := b.footprint()
	pos := *b.position()
	if !fp.Box(pos.Vec()).Contains(r2.Vec{X: x, Y: y}) {
		return false
	}
	if fp.Mask == nil {
		return true
	}

	tx := int(x - pos.X + fp.Width/2)
	ty := int(y - pos.Y + fp.Height/2)
	if b.Mirrored() {
		tx = int(fp.Width) - 1 - tx
	}
	return fp.Mask.Opaque(tx, ty)
}

// DistanceTo implements Item.
func (b *Base) DistanceTo(other Item) float64 {
	return r2.Norm(r2.Sub(r2.Vec{X: b.X(), Y: b.Y()}, r2.Vec{X: other.X(), Y: other.Y()}))
}

// Update does nothing; static items never move.
func (b *Base) Update(elapsed float64) {}

// XMLSave implements Item.
func (b *Base) XMLSave(parent *etree.Element) *etree.Element {
	node := parent.CreateElement(itemTag)
	node.CreateAttr("x", formatFloat(b.X()))
	node.CreateAttr("y", formatFloat(b.Y()))
	return node
}

// XMLLoad implements Item.
func (b *Base) XMLLoad(node *etree.Element) {
	b.SetLocation(attrFloat(node, "x"), attrFloat(node, "y"))
}

func (b *Base) alive() bool {
	return b.aquarium.store.alive(b.entity)
}

// position returns the live component, or a scratch value for a dead handle.
func (b *Base) position() *components.Position {
	if !b.alive() {
		return &components.Position{}
	}
	return b.aquarium.store.pos.Get(b.entity)
}

func (b *Base) footprint() *components.Footprint {
	if !b.alive() {
		return &components.Footprint{}
	}
	return b.aquarium.store.foot.Get(b.entity)
}

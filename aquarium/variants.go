package aquarium

import "github.com/beevik/etree"

// Type tags written to the type attribute.
const (
	TagBeta   = "beta"
	TagSparty = "sparty"
	TagStinky = "stinky"
	TagCastle = "castle"
)

// Image names of the built-in items.
const (
	BetaImage   = "images/beta.png"
	SpartyImage = "images/sparty.png"
	StinkyImage = "images/stinky.png"
	CastleImage = "images/castle.png"
)

// BetaFish is a slow beta.
type BetaFish struct {
	*Fish
}

// NewBetaFish creates a beta swimming at (20, -10).
func NewBetaFish(a *Aquarium) *BetaFish {
	f := newFish(a, BetaImage, TagBeta)
	f.SetSpeed(20, -10)
	return &BetaFish{Fish: f}
}

// XMLSave implements Item.
func (b *BetaFish) XMLSave(parent *etree.Element) *etree.Element {
	node := b.Fish.XMLSave(parent)
	node.CreateAttr("type", TagBeta)
	return node
}

// SpartyFish swims diagonally.
type SpartyFish struct {
	*Fish
}

// NewSpartyFish creates a sparty swimming at (30, 30).
func NewSpartyFish(a *Aquarium) *SpartyFish {
	f := newFish(a, SpartyImage, TagSparty)
	f.SetSpeed(30, 30)
	return &SpartyFish{Fish: f}
}

// XMLSave implements Item.
func (s *SpartyFish) XMLSave(parent *etree.Element) *etree.Element {
	node := s.Fish.XMLSave(parent)
	node.CreateAttr("type", TagSparty)
	return node
}

// StinkyFish is the fast one.
type StinkyFish struct {
	*Fish
}

// NewStinkyFish creates a stinky swimming at (300, -20).
func NewStinkyFish(a *Aquarium) *StinkyFish {
	f := newFish(a, StinkyImage, TagStinky)
	f.SetSpeed(300, -20)
	return &StinkyFish{Fish: f}
}

// XMLSave implements Item.
func (s *StinkyFish) XMLSave(parent *etree.Element) *etree.Element {
	node := s.Fish.XMLSave(parent)
	node.CreateAttr("type", TagStinky)
	return node
}

// Decor is a static item.
type Decor struct {
	*Base
}

// NewDecor creates an untagged decoration using the given image.
func NewDecor(a *Aquarium, asset string) *Decor {
	return &Decor{Base: newBase(a, asset, "")}
}

// Castle is the castle decoration.
type Castle struct {
	*Decor
}

// NewCastle creates a castle.
func NewCastle(a *Aquarium) *Castle {
	return &Castle{Decor: &Decor{Base: newBase(a, CastleImage, TagCastle)}}
}

// XMLSave implements Item.
func (c *Castle) XMLSave(parent *etree.Element) *etree.Element {
	node := c.Decor.XMLSave(parent)
	node.CreateAttr("type", TagCastle)
	return node
}

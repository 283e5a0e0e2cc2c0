// Package aquarium holds the items of an aquarium: it places new items so
// they do not overlap, answers hit tests, keeps the drawing order, advances
// the simulation and saves/loads the .aqua XML format.
//
// An Aquarium is not safe for concurrent use.
package aquarium

import (
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/assets"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
)

// Options configures a new Aquarium. Zero fields take defaults.
type Options struct {
	Config   *config.Config // nil = embedded defaults
	Catalog  assets.Catalog // nil = assets.New(Config.Assets)
	Registry *Registry      // nil = DefaultRegistry()
	Seed     uint64         // 0 = time-based
	Logger   *slog.Logger   // nil = slog.Default()
}

// Aquarium is an ordered collection of items. Later items are drawn on top
// of earlier ones and win hit tests.
type Aquarium struct {
	cfg      *config.Config
	catalog  assets.Catalog
	registry *Registry
	random   *Random
	logger   *slog.Logger

	store *store
	items []Item
}

// New creates an empty aquarium.
func New(opts Options) *Aquarium {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = assets.New(cfg.Assets)
	}
	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Aquarium{
		cfg:      cfg,
		catalog:  catalog,
		registry: registry,
		random:   NewRandom(seed),
		logger:   logger,
		store:    newStore(),
	}
}

// Random returns the stream fish speeds are drawn from.
// Reseed it to reproduce a run.
func (a *Aquarium) Random() *Random { return a.random }

// Registry returns the factories used by Create and Load.
func (a *Aquarium) Registry() *Registry { return a.registry }

// Width is the canvas width in pixels.
func (a *Aquarium) Width() float64 { return a.cfg.Derived.CanvasW }

// Height is the canvas height in pixels.
func (a *Aquarium) Height() float64 { return a.cfg.Derived.CanvasH }

// Len returns the number of items.
func (a *Aquarium) Len() int { return len(a.items) }

// Items returns the items in drawing order, back to front.
func (a *Aquarium) Items() []Item {
	out := make([]Item, len(a.items))
	copy(out, a.items)
	return out
}

// Create builds a registered item bound to this aquarium. The item is not
// added; pass it to Add.
func (a *Aquarium) Create(tag string) (Item, bool) {
	f, ok := a.registry.Lookup(tag)
	if !ok {
		return nil, false
	}
	return f(a), true
}

// Add places item at the first free candidate position and appends it on top.
// Items that belong to another aquarium or are already present are ignored.
func (a *Aquarium) Add(item Item) {
	if item.Aquarium() != a {
		a.logger.Warn("ignoring item from another aquarium", "type", item.Type())
		return
	}
	if a.indexOf(item) >= 0 {
		return
	}

	a.place(item)
	a.items = append(a.items, item)
}

// HitTest returns the topmost item under (x, y), or nil.
func (a *Aquarium) HitTest(x, y float64) Item {
	for i := len(a.items) - 1; i >= 0; i-- {
		if a.items[i].HitTest(x, y) {
			return a.items[i]
		}
	}
	return nil
}

// SendToFront moves item to the top of the drawing order. An item that is
// not in the aquarium is appended. Items that belong to another aquarium
// are ignored.
func (a *Aquarium) SendToFront(item Item) {
	if item.Aquarium() != a {
		a.logger.Warn("ignoring item from another aquarium", "type", item.Type())
		return
	}
	if i := a.indexOf(item); i >= 0 {
		a.items = append(a.items[:i], a.items[i+1:]...)
	}
	a.items = append(a.items, item)
}

// Remove takes item out of the aquarium and releases its state.
// It reports whether the item was present. The item must not be used
// afterwards.
func (a *Aquarium) Remove(item Item) bool {
	i := a.indexOf(item)
	if i < 0 {
		return false
	}
	a.items = append(a.items[:i], a.items[i+1:]...)
	a.store.destroy(item.Entity())
	return true
}

// Clear removes every item. The removed items must not be used afterwards.
func (a *Aquarium) Clear() {
	for _, item := range a.items {
		a.store.destroy(item.Entity())
	}
	a.items = nil
}

// Update advances every item by elapsed seconds, in drawing order.
func (a *Aquarium) Update(elapsed float64) {
	for _, item := range a.items {
		item.Update(elapsed)
	}
}

// Census returns the number of items of each type tag. Items that were
// created but never added are not counted.
func (a *Aquarium) Census() map[string]int {
	added := make(map[ecs.Entity]bool, len(a.items))
	for _, item := range a.items {
		added[item.Entity()] = true
	}
	return a.store.census(func(e ecs.Entity) bool { return added[e] })
}

// indexOf finds item by identity.
func (a *Aquarium) indexOf(item Item) int {
	for i, it := range a.items {
		if it == item {
			return i
		}
	}
	return -1
}

func (a *Aquarium) bounds() systems.Bounds {
	return systems.Bounds{
		Width:  a.Width(),
		Height: a.Height(),
		Margin: a.cfg.Motion.Margin,
	}
}

// footprint resolves an image name, falling back to the configured default
// size so every item has a positive footprint.
func (a *Aquarium) footprint(asset string) components.Footprint {
	fp, err := a.catalog.Footprint(asset)
	if err == nil && fp.Width > 0 && fp.Height > 0 {
		return fp
	}
	a.logger.Warn("using default footprint", "asset", asset, "error", err)
	return components.Footprint{
		Width:  a.cfg.Assets.DefaultWidth,
		Height: a.cfg.Assets.DefaultHeight,
	}
}

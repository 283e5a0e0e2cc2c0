package aquarium

import "sort"

// Factory creates an item bound to a.
type Factory func(a *Aquarium) Item

// Registry maps type tags to the factories that build them.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in items.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TagBeta, func(a *Aquarium) Item { return NewBetaFish(a) })
	r.Register(TagCastle, func(a *Aquarium) Item { return NewCastle(a) })
	r.Register(TagSparty, func(a *Aquarium) Item { return NewSpartyFish(a) })
	r.Register(TagStinky, func(a *Aquarium) Item { return NewStinkyFish(a) })
	return r
}

// Register binds tag to f, replacing any previous factory.
func (r *Registry) Register(tag string, f Factory) {
	r.factories[tag] = f
}

// Lookup returns the factory for tag.
func (r *Registry) Lookup(tag string) (Factory, bool) {
	f, ok := r.factories[tag]
	return f, ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

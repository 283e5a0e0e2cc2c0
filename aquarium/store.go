package aquarium

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// store owns the ECS world holding every item's state.
type store struct {
	world *ecs.World

	itemMapper *ecs.Map4[
		components.Position,
		components.Footprint,
		components.Mirror,
		components.Kind,
	]

	pos    *ecs.Map[components.Position]
	vel    *ecs.Map[components.Velocity]
	foot   *ecs.Map[components.Footprint]
	mirror *ecs.Map[components.Mirror]
	kind   *ecs.Map[components.Kind]

	kindFilter *ecs.Filter1[components.Kind]
}

func newStore() *store {
	world := ecs.NewWorld()
	return &store{
		world: world,
		itemMapper: ecs.NewMap4[
			components.Position,
			components.Footprint,
			components.Mirror,
			components.Kind,
		](world),
		pos:        ecs.NewMap[components.Position](world),
		vel:        ecs.NewMap[components.Velocity](world),
		foot:       ecs.NewMap[components.Footprint](world),
		mirror:     ecs.NewMap[components.Mirror](world),
		kind:       ecs.NewMap[components.Kind](world),
		kindFilter: ecs.NewFilter1[components.Kind](world),
	}
}

// create adds an entity for a new item at the origin.
func (s *store) create(fp components.Footprint, tag string) ecs.Entity {
	pos := components.Position{}
	mirror := components.Mirror{}
	kind := components.Kind{Tag: tag}
	return s.itemMapper.NewEntity(&pos, &fp, &mirror, &kind)
}

// alive reports whether e still holds item state.
func (s *store) alive(e ecs.Entity) bool {
	return s.world.Alive(e)
}

// destroy removes an item's entity. Already removed entities are ignored.
func (s *store) destroy(e ecs.Entity) {
	if s.world.Alive(e) {
		s.world.RemoveEntity(e)
	}
}

// census counts live entities per type tag. Entities for which member
// returns false are skipped.
func (s *store) census(member func(ecs.Entity) bool) map[string]int {
	counts := make(map[string]int)
	query := s.kindFilter.Query()
	for query.Next() {
		if !member(query.Entity()) {
			continue
		}
		kind := query.Get()
		counts[kind.Tag]++
	}
	return counts
}

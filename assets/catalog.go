// Package assets resolves item image names to their on-canvas footprint.
package assets

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

//go:generate go tool mockgen -destination=mocks/catalog.go -package=mocks github.com/pthm-cable/aquarium/assets Catalog

// ErrUnknownAsset is returned when a catalog has no entry for an image name.
var ErrUnknownAsset = errors.New("unknown asset")

// Catalog yields the footprint of a named image.
type Catalog interface {
	Footprint(name string) (components.Footprint, error)
}

// StaticCatalog serves footprints from a fixed size table.
type StaticCatalog struct {
	sizes map[string]config.AssetSize
}

// NewStaticCatalog builds a catalog from the configured size table.
func NewStaticCatalog(cfg config.AssetsConfig) *StaticCatalog {
	sizes := make(map[string]config.AssetSize, len(cfg.Sizes))
	for name, size := range cfg.Sizes {
		sizes[name] = size
	}
	return &StaticCatalog{sizes: sizes}
}

// Footprint implements Catalog.
func (c *StaticCatalog) Footprint(name string) (components.Footprint, error) {
	size, ok := c.sizes[name]
	if !ok {
		return components.Footprint{}, fmt.Errorf("%w: %s", ErrUnknownAsset, name)
	}
	return components.Footprint{Width: size.Width, Height: size.Height}, nil
}

// New returns the catalog described by cfg: image files under cfg.Dir when a
// directory is configured, backed by the static size table.
func New(cfg config.AssetsConfig) Catalog {
	static := NewStaticCatalog(cfg)
	if cfg.Dir == "" {
		return static
	}
	return NewImageCatalog(cfg.Dir, static)
}

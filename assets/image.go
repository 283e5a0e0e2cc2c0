package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pthm-cable/aquarium/components"
)

// ImageCatalog reads footprints from image files on disk.
// Decoded images are cached by name.
type ImageCatalog struct {
	dir      string
	fallback Catalog
	cache    map[string]components.Footprint
}

// NewImageCatalog creates a catalog rooted at dir. Names that have no file
// under dir are passed to fallback, which may be nil.
func NewImageCatalog(dir string, fallback Catalog) *ImageCatalog {
	return &ImageCatalog{
		dir:      dir,
		fallback: fallback,
		cache:    make(map[string]components.Footprint),
	}
}

// Footprint implements Catalog.
func (c *ImageCatalog) Footprint(name string) (components.Footprint, error) {
	if fp, ok := c.cache[name]; ok {
		return fp, nil
	}

	fp, err := c.decode(filepath.Join(c.dir, filepath.FromSlash(name)))
	if errors.Is(err, fs.ErrNotExist) && c.fallback != nil {
		return c.fallback.Footprint(name)
	}
	if err != nil {
		return components.Footprint{}, fmt.Errorf("loading asset %s: %w", name, err)
	}

	c.cache[name] = fp
	return fp, nil
}

func (c *ImageCatalog) decode(path string) (components.Footprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return components.Footprint{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return components.Footprint{}, fmt.Errorf("decoding image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return components.Footprint{}, fmt.Errorf("image %s is empty", path)
	}

	return components.Footprint{
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
		Mask:   alphaMask{img: img},
	}, nil
}

// alphaMask treats any pixel with nonzero alpha as part of the item.
type alphaMask struct {
	img image.Image
}

func (m alphaMask) Opaque(x, y int) bool {
	b := m.img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return false
	}
	_, _, _, a := m.img.At(p.X, p.Y).RGBA()
	return a > 0
}

package aquarium

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const (
	rootTag = "aqua"
	itemTag = "item"
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("document has no root element")

// Document builds the .aqua document for the current items.
func (a *Aquarium) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n")

	root := doc.CreateElement(rootTag)
	for _, item := range a.items {
		item.XMLSave(root)
	}
	return doc
}

// WriteTo writes the .aqua document to w.
func (a *Aquarium) WriteTo(w io.Writer) error {
	if _, err := a.Document().WriteTo(w); err != nil {
		return fmt.Errorf("writing aquarium: %w", err)
	}
	return nil
}

// Save writes the aquarium to a .aqua file.
func (a *Aquarium) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		a.logger.Error("write to XML failed", "path", path, "error", err)
		return fmt.Errorf("creating aquarium file: %w", err)
	}

	err = a.WriteTo(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing aquarium file: %w", cerr)
	}
	if err != nil {
		a.logger.Error("write to XML failed", "path", path, "error", err)
		return err
	}
	return nil
}

// ReadFrom replaces the items with those of the .aqua document read from r.
// If the document does not parse the aquarium is left unchanged.
func (a *Aquarium) ReadFrom(r io.Reader) error {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return fmt.Errorf("parsing aquarium: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("parsing aquarium: %w", ErrNoRoot)
	}

	a.Clear()
	for _, node := range root.ChildElements() {
		if node.Tag == itemTag {
			a.loadItem(node)
		}
	}
	return nil
}

// Load replaces the items with those saved in a .aqua file.
// If the file cannot be read or parsed the aquarium is left unchanged.
func (a *Aquarium) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		a.logger.Error("unable to load aquarium file", "path", path, "error", err)
		return fmt.Errorf("opening aquarium file: %w", err)
	}
	defer f.Close()

	if err := a.ReadFrom(f); err != nil {
		a.logger.Error("unable to load aquarium file", "path", path, "error", err)
		return err
	}
	return nil
}

// loadItem creates the item a node describes. Unknown types are skipped.
// The item goes through Add first so it takes part in placement, then the
// saved attributes overwrite the placed position.
func (a *Aquarium) loadItem(node *etree.Element) {
	tag := node.SelectAttrValue("type", "")
	item, ok := a.Create(tag)
	if !ok {
		a.logger.Debug("skipping unknown item type", "type", tag)
		return
	}

	a.Add(item)
	item.XMLLoad(node)
}

// formatFloat renders v as the shortest plain decimal that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// attrFloat reads a numeric attribute. Missing or malformed values are 0.
func attrFloat(node *etree.Element, key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(node.SelectAttrValue(key, "0")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

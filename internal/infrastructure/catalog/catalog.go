package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nutriscan/backend/internal/domain"
)

// fillerWordRegex strips low-signal qualifier words when deriving variant keys
var fillerWordRegex = regexp.MustCompile(`\b(powder|extract|natural|artificial|added|permitted)\b`)

// Variant is one key of the catalog's name index together with the entry it
// resolves to. Variants preserve registration order so that scans over the
// index are deterministic.
type Variant struct {
	Key   string
	Index int
}

// Catalog is the read-only reference table of known ingredients. It is built
// once at startup and shared across all concurrent analyses without locking:
// no field is mutated after construction.
type Catalog struct {
	entries    []domain.ReferenceEntry
	variantIdx map[string]int
	variants   []Variant
	model      *TFIDFModel
}

// New builds a catalog from reference entries. Every entry must carry a
// non-empty canonical name.
//
// The variant index registers each entry's exact lowercased-and-trimmed name,
// and additionally a filler-stripped form when it differs. Stripped variants
// never overwrite an existing key: the first-loaded entry keeps it.
func New(entries []domain.ReferenceEntry) (*Catalog, error) {
	c := &Catalog{
		entries:    entries,
		variantIdx: make(map[string]int, len(entries)*2),
		variants:   make([]Variant, 0, len(entries)*2),
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty ingredient name", domain.ErrDataLoad, i)
		}
		names[i] = entry.Name

		c.registerExact(name, i)

		stripped := strings.TrimSpace(collapseSpaces(fillerWordRegex.ReplaceAllString(name, "")))
		if stripped != "" && stripped != name {
			c.registerVariant(stripped, i)
		}
	}

	c.model = NewTFIDFModel(names)
	return c, nil
}

// registerExact records an entry's own lowercase name. A duplicate canonical
// name keeps its original position in the scan order but points at the later
// entry.
func (c *Catalog) registerExact(key string, idx int) {
	if pos, ok := c.lookupVariantPos(key); ok {
		c.variantIdx[key] = idx
		c.variants[pos].Index = idx
		return
	}
	c.variantIdx[key] = idx
	c.variants = append(c.variants, Variant{Key: key, Index: idx})
}

// registerVariant records a derived key only if no earlier entry claimed it.
func (c *Catalog) registerVariant(key string, idx int) {
	if _, ok := c.variantIdx[key]; ok {
		return
	}
	c.variantIdx[key] = idx
	c.variants = append(c.variants, Variant{Key: key, Index: idx})
}

func (c *Catalog) lookupVariantPos(key string) (int, bool) {
	if _, ok := c.variantIdx[key]; !ok {
		return 0, false
	}
	for i, v := range c.variants {
		if v.Key == key {
			return i, true
		}
	}
	return 0, false
}

// Lookup resolves a lowercased-and-trimmed name through the variant index.
func (c *Catalog) Lookup(name string) (domain.ReferenceEntry, bool) {
	idx, ok := c.variantIdx[name]
	if !ok {
		return domain.ReferenceEntry{}, false
	}
	return c.entries[idx], true
}

// Variants returns the index keys in registration order. Callers must treat
// the slice as read-only.
func (c *Catalog) Variants() []Variant {
	return c.variants
}

// Entry returns the reference entry at the given index.
func (c *Catalog) Entry(idx int) domain.ReferenceEntry {
	return c.entries[idx]
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Model returns the TF-IDF model trained over canonical names.
func (c *Catalog) Model() *TFIDFModel {
	return c.model
}

var multiSpaceRegex = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return multiSpaceRegex.ReplaceAllString(s, " ")
}

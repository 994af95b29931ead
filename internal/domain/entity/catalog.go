package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/readytocook/billing-api/pkg/apperror"
)

// Catalog maps category names to item names. Categories and items keep
// their insertion order through JSON round-trips, and duplicate items
// within a category are rejected on insert.
type Catalog struct {
	categories []string
	items      map[string][]string
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string][]string)}
}

// Categories returns the category names in insertion order
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Items returns the item names of a category in insertion order
func (c *Catalog) Items(category string) []string {
	items, ok := c.items[category]
	if !ok {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// HasCategory reports whether the category exists
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.items[category]
	return ok
}

// Len returns the number of categories
func (c *Catalog) Len() int {
	return len(c.categories)
}

// AddCategory adds an empty category. Adding an existing category is a no-op.
func (c *Catalog) AddCategory(name string) error {
	if name == "" {
		return apperror.NewValidationError("Category name is required")
	}
	if c.HasCategory(name) {
		return nil
	}
	c.categories = append(c.categories, name)
	c.items[name] = []string{}
	return nil
}

// RemoveCategory removes a category and all its items
func (c *Catalog) RemoveCategory(name string) error {
	if !c.HasCategory(name) {
		return apperror.NewNotFoundError("Category")
	}
	delete(c.items, name)
	for i, cat := range c.categories {
		if cat == name {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			break
		}
	}
	return nil
}

// AddItem appends an item to a category. Adding an item that already
// exists in the category is a no-op, not an error.
func (c *Catalog) AddItem(category, item string) error {
	if item == "" {
		return apperror.NewValidationError("Item name is required")
	}
	items, ok := c.items[category]
	if !ok {
		return apperror.NewNotFoundError("Category")
	}
	for _, existing := range items {
		if existing == item {
			return nil
		}
	}
	c.items[category] = append(items, item)
	return nil
}

// RemoveItem removes an item from a category
func (c *Catalog) RemoveItem(category, item string) error {
	items, ok := c.items[category]
	if !ok {
		return apperror.NewNotFoundError("Category")
	}
	for i, existing := range items {
		if existing == item {
			c.items[category] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("Item")
}

// Equal reports whether two catalogs hold the same categories and items
// in the same order
func (c *Catalog) Equal(other *Catalog) bool {
	if len(c.categories) != len(other.categories) {
		return false
	}
	for i, cat := range c.categories {
		if other.categories[i] != cat {
			return false
		}
		a, b := c.items[cat], other.items[cat]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON writes the catalog as a JSON object with categories in
// insertion order, matching the backing file contract.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.items[cat])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the key order of the document
func (c *Catalog) UnmarshalJSON(data []byte) error {
	c.categories = nil
	c.items = make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category := keyTok.(string)
		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("catalog: items of %q: %w", category, err)
		}
		if items == nil {
			items = []string{}
		}
		c.categories = append(c.categories, category)
		c.items[category] = items
	}
	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

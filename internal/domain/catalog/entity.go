package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Category is the fixed product grouping used by the storefront filters.
type Category string

const (
	CategoryInverters Category = "inverters"
	CategoryBatteries Category = "batteries"
	CategoryPanels    Category = "panels"
	CategoryOthers    Category = "others"
)

// ParseCategory validates a raw category value from a query parameter.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryInverters, CategoryBatteries, CategoryPanels, CategoryOthers:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown product category %q", s)
}

// Product is a catalog entry. Products are created by seeding and are
// read-only from the storefront's perspective.
type Product struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex" json:"name"`
	Category     Category  `gorm:"index" json:"category"`
	Description  string    `json:"description"`
	RegularPrice float64   `json:"regular_price"`
	SalePrice    float64   `json:"sale_price"`
	ImageURL     string    `json:"image_url"`
	Specs        Specs     `gorm:"serializer:json" json:"specs,omitempty"`
	InStock      bool      `json:"in_stock"`
	Backorder    bool      `json:"backorder"`
	Position     int       `json:"-"` // catalog display order
	CreatedAt    time.Time `json:"created_at"`
}

// OutOfStock reports whether the product cannot be bought at all:
// not on hand and not pre-orderable.
func (p *Product) OutOfStock() bool {
	return !p.InStock && !p.Backorder
}

// SpecEntry is one display attribute of a product.
type SpecEntry struct {
	Name  string
	Value string
}

// Specs is an attribute list that marshals as a JSON object while keeping
// insertion order, which plain maps would destroy.
type Specs []SpecEntry

func (s Specs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Specs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specs: expected JSON object, got %v", tok)
	}

	var out Specs
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("specs: value for %q must be a string: %w", key, err)
		}
		out = append(out, SpecEntry{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

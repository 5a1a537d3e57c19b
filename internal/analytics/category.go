package analytics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// CategoryMap maps a category name to the products it contains.
// It is built once at startup and is read-only afterwards; lookups are case-insensitive.
type CategoryMap struct {
	products map[string][]string
}

// NewCategoryMap copies m into an immutable table
func NewCategoryMap(m map[string][]string) CategoryMap {
	products := make(map[string][]string, len(m))
	for category, names := range m {
		key := categoryKey(category)
		cleaned := lo.Uniq(lo.Compact(lo.Map(names, func(s string, _ int) string {
			return strings.TrimSpace(s)
		})))
		products[key] = lo.Uniq(append(products[key], cleaned...))
	}
	return CategoryMap{products: products}
}

// DefaultCategoryMap returns the built-in catalogue
func DefaultCategoryMap() CategoryMap {
	return NewCategoryMap(map[string][]string{
		"electronics": {"Laptop", "Tablet", "Smartphone"},
		"accessories": {"Smartwatch", "Headphones", "Chargers"},
		"wearables":   {"Smartwatch", "Fitness Band"},
	})
}

// LoadCategoryMap reads a JSON object of the form {"category": ["Product", ...]}
func LoadCategoryMap(r io.Reader) (CategoryMap, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return CategoryMap{}, fmt.Errorf("failed to decode category map: %w", err)
	}
	for category := range raw {
		if categoryKey(category) == "" {
			return CategoryMap{}, fmt.Errorf("category map contains an empty category name")
		}
	}
	return NewCategoryMap(raw), nil
}

// LoadCategoryMapFile loads path, or returns the built-in catalogue when path is empty
func LoadCategoryMapFile(path string) (CategoryMap, error) {
	if path == "" {
		return DefaultCategoryMap(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return CategoryMap{}, fmt.Errorf("failed to open category map: %w", err)
	}
	defer f.Close()
	return LoadCategoryMap(f)
}

// Products returns the products of a category and whether the category is known
func (c CategoryMap) Products(category string) ([]string, bool) {
	names, ok := c.products[categoryKey(category)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

// Categories lists the known category names in ascending order
func (c CategoryMap) Categories() []string {
	keys := lo.Keys(c.products)
	sort.Strings(keys)
	return keys
}

func categoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

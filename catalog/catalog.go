// Package catalog serves the product listing. Filtering happens in memory
// over the whole collection; the result keeps the collection's order.
package catalog

import (
	"strings"

	"mineshop/models"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Filter narrows products by category and a case-insensitive name search.
// An empty or "all" category matches everything; an empty search matches
// everything. Both filters compose.
func Filter(products []models.Product, category, search string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories lists the distinct categories in first-appearance order.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// ByID finds a product in the collection, reporting whether it exists.
func ByID(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ProductID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

package inventory

import (
	"sort"
	"strconv"
	"strings"

	"c4inventario/internal/domain/models"
)

// FilterAll matches every value of a selector filter.
const FilterAll = "all"

// productSearchFields is the set of text fields the search box matches
// against.
var productSearchFields = []func(models.Product) string{
	func(p models.Product) string { return p.Name },
	func(p models.Product) string { return p.ProductID },
	func(p models.Product) string { return p.Brand },
	func(p models.Product) string { return p.Model },
	func(p models.Product) string { return p.SerialNumber },
	func(p models.Product) string { return p.CreatedBy },
	func(p models.Product) string { return p.UpdatedBy },
}

// ProductQuery captures the table's search, filter and sort controls.
type ProductQuery struct {
	Search string
	Status string
	Sort   SortState
}

// FilterProducts applies the case-insensitive search and the exact status
// filter, AND-composed, then the active sort. The input slice is not
// modified.
func FilterProducts(products []models.Product, query ProductQuery) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	term := strings.ToLower(strings.TrimSpace(query.Search))
	for _, p := range products {
		if term != "" && !matchesProduct(p, term) {
			continue
		}
		if query.Status != "" && query.Status != FilterAll && p.Status != query.Status {
			continue
		}
		filtered = append(filtered, p)
	}

	return SortProducts(filtered, query.Sort)
}

func matchesProduct(p models.Product, term string) bool {
	for _, field := range productSearchFields {
		if strings.Contains(strings.ToLower(field(p)), term) {
			return true
		}
	}
	return false
}

// Sort directions.
const (
	Ascending  = "asc"
	Descending = "desc"
)

// SortState is the active single-key sort of the product table.
type SortState struct {
	Key       string
	Direction string
}

// Toggle returns the state after clicking a column header: the same key flips
// direction, a new key resets to ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// Indicator is the arrow shown next to the active column header.
func (s SortState) Indicator(key string) string {
	if s.Key != key {
		return ""
	}
	if s.Direction == Descending {
		return " ↓"
	}
	return " ↑"
}

// SortProducts stably sorts by the state's key over lowercased string-coerced
// field values. An empty key returns the list unchanged.
func SortProducts(products []models.Product, state SortState) []models.Product {
	if state.Key == "" {
		return products
	}

	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	desc := state.Direction == Descending
	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(productSortValue(sorted[i], state.Key))
		b := strings.ToLower(productSortValue(sorted[j], state.Key))
		if desc {
			return a > b
		}
		return a < b
	})

	return sorted
}

func productSortValue(p models.Product, key string) string {
	switch key {
	case "productId":
		return p.ProductID
	case "name":
		return p.Name
	case "brand":
		return p.Brand
	case "model":
		return p.Model
	case "serialNumber":
		return p.SerialNumber
	case "category":
		return p.Category
	case "status":
		return p.Status
	case "location":
		return p.Location
	case "quantity":
		// Zero-padding keeps the string comparison numeric-consistent for
		// realistic quantities.
		return leftPad(strconv.Itoa(p.Quantity), 12)
	case "price":
		return leftPad(strconv.FormatFloat(p.Price, 'f', 2, 64), 16)
	case "lastUser":
		return p.LastUser()
	case "updatedAt":
		if p.UpdatedAt.IsZero() {
			return ""
		}
		return p.UpdatedAt.UTC().Format("2006-01-02T15:04:05")
	default:
		return ""
	}
}

func leftPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

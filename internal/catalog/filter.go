package catalog

import (
	"strconv"
	"strings"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
)

const (
	PageSize = 12

	// CategoryAll disables the category filter.
	CategoryAll = "all"
)

// IsAllCategories reports whether category selects every product. The
// localized labels of the "all" entry are accepted too.
func IsAllCategories(category string) bool {
	switch strings.ToLower(category) {
	case "", CategoryAll, "tous":
		return true
	}
	return false
}

// Filter keeps products matching search and category. search matches the
// lowercased name or category, or appears in the decimal price.
func Filter(products []domain.Product, search, category string) []domain.Product {
	needle := strings.ToLower(search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) &&
			!strings.Contains(strconv.FormatInt(p.Price, 10), search) {
			continue
		}
		if !IsAllCategories(category) && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Page is one page of a filtered list.
type Page struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Total      int              `json:"total"`
}

func (p Page) HasPrevious() bool { return p.Page > 1 }
func (p Page) HasNext() bool     { return p.Page < p.TotalPages }

// Paginate returns the 1-indexed page of products, PageSize per page. page
// is clamped into [1, TotalPages].
func Paginate(products []domain.Product, page int) Page {
	total := len(products)
	totalPages := (total + PageSize - 1) / PageSize

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := products[start:end]
	if items == nil {
		items = []domain.Product{}
	}

	return Page{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

// Categories returns the distinct categories in first-seen order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func Find(products []domain.Product, id int64) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured" // urutan input dipertahankan
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortNewest    SortKey = "newest" // id desc sebagai proxy recency
)

// CategoryAll = sentinel "tanpa filter kategori".
const CategoryAll = "All"

// Criteria: parameter filter/sort dari user.
type Criteria struct {
	Search   string  `json:"search"`
	Category string  `json:"category"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	Sort     SortKey `json:"sort"`
}

// DefaultCriteria = state awal UI: semua kategori, range harga 0-1000,
// urutan featured.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: CategoryAll,
		MinPrice: 0,
		MaxPrice: 1000,
		Sort:     SortFeatured,
	}
}

// Query menurunkan subset terurut dari katalog. Pipeline fix:
// search -> kategori -> harga -> sort. Source tidak pernah dimutasi;
// kriteria identik selalu menghasilkan urutan identik.
func (c *Catalog) Query(cr Criteria) []Product {
	results := make([]Product, 0, len(c.Products))
	results = append(results, c.Products...)

	if cr.Search != "" {
		needle := strings.ToLower(cr.Search)
		kept := results[:0]
		for _, p := range results {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				(p.Category != "" && strings.Contains(strings.ToLower(p.Category), needle)) {
				kept = append(kept, p)
			}
		}
		results = kept
	}

	if cr.Category != CategoryAll && cr.Category != "" {
		kept := results[:0]
		for _, p := range results {
			if c.category(p) == cr.Category {
				kept = append(kept, p)
			}
		}
		results = kept
	}

	// filter harga selalu jalan, inklusif dua sisi
	kept := results[:0]
	for _, p := range results {
		if p.Price >= cr.MinPrice && p.Price <= cr.MaxPrice {
			kept = append(kept, p)
		}
	}
	results = kept

	switch cr.Sort {
	case SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	case SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price > results[j].Price })
	case SortNameAsc:
		col := collate.New(language.English)
		sort.SliceStable(results, func(i, j int) bool {
			return col.CompareString(results[i].Name, results[j].Name) < 0
		})
	case SortNameDesc:
		col := collate.New(language.English)
		sort.SliceStable(results, func(i, j int) bool {
			return col.CompareString(results[i].Name, results[j].Name) > 0
		})
	case SortNewest:
		sort.SliceStable(results, func(i, j int) bool { return results[i].ID > results[j].ID })
	default:
		// featured: biarkan urutan input
	}

	return results
}

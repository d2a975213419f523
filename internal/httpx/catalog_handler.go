package httpx

import (
	"net/http"
	"strconv"

	"github.com/ariefcatur/go-shopfront.git/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	Sections map[string]*catalog.Catalog // "home", "men", ...
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/catalog/{section}/products", h.listProducts)
	r.Get("/catalog/{section}/categories", h.listCategories)
}

type productsResp struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
	Total    int               `json:"total"` // jumlah produk section sebelum filter
	Criteria catalog.Criteria  `json:"criteria"`
}

func (h *CatalogHandler) section(w http.ResponseWriter, r *http.Request) *catalog.Catalog {
	c, ok := h.Sections[chi.URLParam(r, "section")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown section"})
		return nil
	}
	return c
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	c := h.section(w, r)
	if c == nil {
		return
	}

	cr := criteriaFromQuery(r)
	results := c.Query(cr)
	writeJSON(w, http.StatusOK, productsResp{
		Products: results,
		Count:    len(results),
		Total:    len(c.Products),
		Criteria: cr,
	})
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	c := h.section(w, r)
	if c == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": c.Categories(),
		"max_price":  c.MaxPrice(),
	})
}

// criteriaFromQuery: param absen/invalid jatuh ke default UI, bukan error.
func criteriaFromQuery(r *http.Request) catalog.Criteria {
	cr := catalog.DefaultCriteria()
	q := r.URL.Query()
	cr.Search = q.Get("search")
	if v := q.Get("category"); v != "" {
		cr.Category = v
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		cr.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		cr.MaxPrice = v
	}
	if v := q.Get("sort"); v != "" {
		cr.Sort = catalog.SortKey(v)
	}
	return cr
}

package catalog

// Product statis dari katalog, tidak pernah dimutasi oleh core.
// Field JSON mengikuti format storefront (camelCase).
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	OldPrice float64  `json:"oldPrice,omitempty"` // harga coret, opsional
	Category string   `json:"category,omitempty"` // kosong -> default section
	Sizes    []string `json:"sizes,omitempty"`
	Image    string   `json:"image,omitempty"`
	Rating   float64  `json:"rating,omitempty"`
}

// Catalog: satu section produk (mis. halaman Men) dengan kategori default
// untuk produk yang tidak menyebut kategorinya sendiri.
type Catalog struct {
	Products        []Product
	DefaultCategory string
}

func (c *Catalog) category(p Product) string {
	if p.Category != "" {
		return p.Category
	}
	return c.DefaultCategory
}

// Find mencari produk by id.
func (c *Catalog) Find(id int) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories: "All" + kategori distinct urut kemunculan pertama.
func (c *Catalog) Categories() []string {
	out := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range c.Products {
		cat := c.category(p)
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// MaxPrice dipakai UI buat batas atas slider harga.
func (c *Catalog) MaxPrice() float64 {
	var max float64
	for _, p := range c.Products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

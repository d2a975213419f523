package cart

import "github.com/ariefcatur/go-shopfront.git/internal/catalog"

// Batas kuantitas per baris. Add TIDAK menerapkan batas atas saat merge,
// hanya UpdateQuantity yang clamp (perilaku warisan, jangan "dibenerin").
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// Item: salinan field display produk + pilihan user. Identity key =
// (id, selectedSize); maksimal satu baris per key. Format JSON = format
// snapshot yang dipersist apa adanya.
type Item struct {
	ProductID    int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	OldPrice     float64 `json:"oldPrice,omitempty"`
	Category     string  `json:"category,omitempty"`
	Image        string  `json:"image,omitempty"`
	SelectedSize string  `json:"selectedSize,omitempty"`
	Quantity     int     `json:"quantity"`
}

type identity struct {
	productID int
	size      string
}

func (it Item) key() identity {
	return identity{productID: it.ProductID, size: it.SelectedSize}
}

// Selection: kandidat dari halaman produk. Quantity <= 0 dianggap 1.
type Selection struct {
	Product      catalog.Product
	SelectedSize string
	Quantity     int
}

func (sel Selection) item() Item {
	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}
	return Item{
		ProductID:    sel.Product.ID,
		Name:         sel.Product.Name,
		Price:        sel.Product.Price,
		OldPrice:     sel.Product.OldPrice,
		Category:     sel.Product.Category,
		Image:        sel.Product.Image,
		SelectedSize: sel.SelectedSize,
		Quantity:     qty,
	}
}

package checkout

import (
	"time"

	"github.com/ariefcatur/go-shopfront.git/internal/cart"
)

// Status awal tiap order baru. Notifier downstream boleh menandai progres
// di cache-nya sendiri; record yang dipersist tidak diubah dari sini.
const StatusProcessing = "Processing"

// OrderRecord dibuat hanya saat confirm, di-append ke list `orders`
// yang dipersist. Format JSON mengikuti storefront.
type OrderRecord struct {
	OrderID     string      `json:"orderId"`
	Email       string      `json:"email"`
	Date        time.Time   `json:"date"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	Items       []cart.Item `json:"items"`
}

package checkout

import (
	"encoding/json"
	"time"
)

const (
	EventOrderPlaced   = "OrderPlaced"
	EventOrderNotified = "OrderNotified"
)

const (
	TopicOrderPlaced   = "storefront.order.placed"
	TopicOrderNotified = "storefront.order.notified"
)

// Partition key = order_id, supaya semua event 1 order maintain urutan.
func PartitionKey(orderID string) []byte { return []byte(orderID) }

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // salah satu const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "shopfront-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // biasanya order_id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload per event ----

type PlacedItem struct {
	ProductID    int     `json:"product_id"`
	SelectedSize string  `json:"selected_size,omitempty"`
	Qty          int     `json:"qty"`
	Price        float64 `json:"price"`
}

type OrderPlacedPayload struct {
	OrderID     string       `json:"order_id"`
	Email       string       `json:"email"`
	TotalAmount float64      `json:"total_amount"`
	Items       []PlacedItem `json:"items"`
}

type OrderNotifiedPayload struct {
	OrderID    string    `json:"order_id"`
	Email      string    `json:"email"`
	NotifiedAt time.Time `json:"notified_at"`
}

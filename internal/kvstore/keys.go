package kvstore

import "time"

// Nama record logis per sesi. Format nilai lihat masing-masing paket:
// user -> session.User, cart -> []cart.Item, orders -> []checkout.OrderRecord.
const (
	KeyUser   = "user"
	KeyCart   = "cart"
	KeyOrders = "orders"
)

var (
	// TTL record sesi di Redis; refresh tiap write-through.
	TTLSessionRecord = 30 * 24 * time.Hour
)

package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/ariefcatur/go-shopfront.git/internal/cart"
	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher dipenuhi kafkax.Producer. Boleh nil: confirm tetap sah tanpa
// event (publish itu best-effort, di luar unit atomik).
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Lifecycle: state machine checkout per sesi,
// Idle -> ReviewingCheckout -> Confirmed -> Idle. Tidak ada operasi yang
// raise ke caller; semua gagal jadi no-op yang bisa diamati lewat State().
type Lifecycle struct {
	cart     *cart.Store
	kv       kvstore.Store
	producer Publisher
	service  string

	state   State
	current *OrderRecord // order yang lagi ditampilkan sampai di-acknowledge
}

func NewLifecycle(kv kvstore.Store, c *cart.Store, producer Publisher, service string) *Lifecycle {
	return &Lifecycle{
		cart:     c,
		kv:       kv,
		producer: producer,
		service:  service,
		state:    StateIdle,
	}
}

func (l *Lifecycle) State() State { return l.state }

// Current: order hasil confirm terakhir yang belum di-acknowledge.
func (l *Lifecycle) Current() *OrderRecord { return l.current }

// Begin: Idle -> Reviewing, hanya kalau cart tidak kosong. Guard, bukan error.
func (l *Lifecycle) Begin() bool {
	if !CanTransition(l.state, StateReviewing) || l.cart.LineCount() == 0 {
		return false
	}
	l.state = StateReviewing
	return true
}

// Confirm: Reviewing -> Confirmed. Urutan efek: order id unik, snapshot
// OrderRecord, append ke list orders yang dipersist, lalu cart.Clear.
// Kalau append gagal, state tidak maju dan cart tidak dibersihkan (satu
// unit atomik). Return nil kalau guard/persist gagal.
func (l *Lifecycle) Confirm(ctx context.Context, email string) *OrderRecord {
	if !CanTransition(l.state, StateConfirmed) {
		return nil
	}
	rec := OrderRecord{
		OrderID:     uuid.NewString(),
		Email:       email,
		Date:        time.Now().UTC(),
		TotalAmount: l.cart.Total(),
		Status:      StatusProcessing,
		Items:       l.cart.Items(),
	}
	if err := l.appendOrder(ctx, rec); err != nil {
		log.Printf("checkout confirm: append order gagal, state tetap: %v", err)
		return nil
	}
	l.cart.Clear(ctx)
	l.state = StateConfirmed
	l.current = &rec

	l.publishPlaced(rec)
	return &rec
}

// Cancel: Reviewing -> Idle tanpa efek samping.
func (l *Lifecycle) Cancel() bool {
	if l.state != StateReviewing {
		return false
	}
	l.state = StateIdle
	return true
}

// Acknowledge: Confirmed -> Idle, tutup tampilan konfirmasi. Record yang
// dipersist tidak disentuh.
func (l *Lifecycle) Acknowledge() bool {
	if l.state != StateConfirmed {
		return false
	}
	l.state = StateIdle
	l.current = nil
	return true
}

// Orders membaca list order yang dipersist. Absen/rusak -> kosong.
func (l *Lifecycle) Orders(ctx context.Context) []OrderRecord {
	list, err := l.loadOrders(ctx)
	if err != nil {
		log.Printf("checkout: baca list orders: %v", err)
		return []OrderRecord{}
	}
	return list
}

// loadOrders: record absen atau JSON rusak -> mulai kosong. Error baca
// lain (backend lagi bermasalah) diteruskan; kalau ditelan, append
// berikutnya bakal nimpa history yang sebenarnya masih ada.
func (l *Lifecycle) loadOrders(ctx context.Context) ([]OrderRecord, error) {
	b, err := l.kv.Get(ctx, kvstore.KeyOrders)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []OrderRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	var out []OrderRecord
	if err := json.Unmarshal(b, &out); err != nil {
		log.Printf("checkout: list orders rusak, dianggap kosong: %v", err)
		return []OrderRecord{}, nil
	}
	return out, nil
}

func (l *Lifecycle) appendOrder(ctx context.Context, rec OrderRecord) error {
	list, err := l.loadOrders(ctx)
	if err != nil {
		return err
	}
	b, err := json.Marshal(append(list, rec))
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, kvstore.KeyOrders, b)
}

func (l *Lifecycle) publishPlaced(rec OrderRecord) {
	if l.producer == nil {
		return
	}
	items := make([]PlacedItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, PlacedItem{
			ProductID:    it.ProductID,
			SelectedSize: it.SelectedSize,
			Qty:          it.Quantity,
			Price:        it.Price,
		})
	}
	payload, err := json.Marshal(OrderPlacedPayload{
		OrderID:     rec.OrderID,
		Email:       rec.Email,
		TotalAmount: rec.TotalAmount,
		Items:       items,
	})
	if err != nil {
		log.Printf("checkout publish: marshal payload: %v", err)
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      l.service,
		CorrelationID: rec.OrderID,
		Payload:       payload,
	}
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("checkout publish: marshal envelope: %v", err)
		return
	}
	l.producer.Publish(PartitionKey(rec.OrderID), b,
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

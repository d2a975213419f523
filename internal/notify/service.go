package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ariefcatur/go-shopfront.git/internal/checkout"
	kafkax "github.com/ariefcatur/go-shopfront.git/internal/kafka"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Service bereaksi terhadap OrderPlaced: kirim notifikasi ke pembeli
// (di sini masih log, gateway email nyusul), cache status order di Redis,
// lalu publish OrderNotified. Record order yang dipersist tidak diubah.
type Service struct {
	Redis       *redis.Client
	Producer    checkout.Publisher // publish storefront.order.notified
	ServiceName string
}

// HandleOrderPlaced dipasang sebagai handler consumer.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	// 1) decode envelope
	var env checkout.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != checkout.EventOrderPlaced {
		return nil
	} // ignore

	// 2) dedup via Redis (pakai event_id)
	dkey := fmt.Sprintf(KeyDedup, "notify", env.EventID)
	n, _ := s.Redis.Exists(ctx, dkey).Result()
	if n > 0 {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", TTLDedup).Err()

	// 3) decode payload
	p, err := kafkax.UnwrapPayload[checkout.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}

	recipient := p.Email
	if recipient == "" {
		recipient = "guest"
	}
	log.Printf("notify: order %s utk %s, total %.2f, %d item",
		p.OrderID, recipient, p.TotalAmount, len(p.Items))

	// 4) cache status terakhir biar storefront bisa baca cepat
	skey := fmt.Sprintf(KeyOrderStatus, p.OrderID)
	status, _ := json.Marshal(map[string]any{
		"status":     "Notified",
		"updated_at": time.Now().UTC(),
	})
	_ = s.Redis.Set(ctx, skey, status, TTLStatusCache).Err()

	return s.publishNotified(p.OrderID, p.Email, env.TraceID)
}

func (s *Service) publishNotified(orderID, email, trace string) error {
	ev := checkout.Envelope{
		EventID:       uuid.NewString(),
		EventType:     checkout.EventOrderNotified,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(checkout.OrderNotifiedPayload{
			OrderID:    orderID,
			Email:      email,
			NotifiedAt: time.Now().UTC(),
		}),
	}
	s.Producer.Publish(checkout.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(checkout.EventOrderNotified)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	return nil
}

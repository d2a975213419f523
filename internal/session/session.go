package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/ariefcatur/go-shopfront.git/internal/cart"
	"github.com/ariefcatur/go-shopfront.git/internal/checkout"
	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
)

// Session: context object yang memiliki user aktif + Cart Store + Lifecycle
// checkout untuk satu sesi. Dibuat lewat Manager, di-hydrate sekali saat
// dibuat. Mutex embedded menserialkan operasi per sesi: satu operasi jalan
// sampai selesai sebelum yang berikutnya diterima.
type Session struct {
	sync.Mutex

	ID       string
	Cart     *cart.Store
	Checkout *checkout.Lifecycle

	kv   kvstore.Store
	user *User
}

func New(ctx context.Context, id string, kv kvstore.Store, producer checkout.Publisher, service string) *Session {
	c := cart.NewStore(kv)
	s := &Session{
		ID:       id,
		Cart:     c,
		Checkout: checkout.NewLifecycle(kv, c, producer, service),
		kv:       kv,
	}
	s.hydrate(ctx)
	return s
}

func (s *Session) hydrate(ctx context.Context) {
	s.Cart.Hydrate(ctx)
	b, err := s.kv.Get(ctx, kvstore.KeyUser)
	if err != nil {
		return // guest
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		log.Printf("session hydrate: record user rusak, lanjut sebagai guest: %v", err)
		return
	}
	s.user = &u
}

// User: nil berarti guest.
func (s *Session) User() *User { return s.user }

// SignIn menulis record user dan menjadikannya user aktif. Sign-up memakai
// jalur yang sama; beda-nya cuma validasi form di presentation layer.
func (s *Session) SignIn(ctx context.Context, name, email string) User {
	u := User{Name: name, Email: email}
	b, err := json.Marshal(u)
	if err == nil {
		if err := s.kv.Set(ctx, kvstore.KeyUser, b); err != nil {
			log.Printf("session signin: write record user: %v", err)
		}
	}
	s.user = &u
	return u
}

// SignOut hapus record user dan reset ke guest. Cart dibiarkan; logout di
// storefront tidak mengosongkan belanjaan.
func (s *Session) SignOut(ctx context.Context) {
	if err := s.kv.Delete(ctx, kvstore.KeyUser); err != nil {
		log.Printf("session signout: delete record user: %v", err)
	}
	s.user = nil
}

package cart

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ariefcatur/go-shopfront.git/internal/kvstore"
)

// Store: koleksi Item in-memory yang otoritatif, write-through ke kvstore
// pada tiap mutasi. Urutan insert = urutan display. Tidak ada locking di
// sini; serialisasi per sesi diatur pemanggil (lihat session.Session).
type Store struct {
	kv    kvstore.Store
	items []Item
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Hydrate membaca snapshot saat start. Record absen/rusak -> koleksi kosong,
// tidak pernah error ke caller.
func (s *Store) Hydrate(ctx context.Context) {
	s.items = nil
	b, err := s.kv.Get(ctx, kvstore.KeyCart)
	if err != nil {
		return
	}
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		log.Printf("cart hydrate: snapshot rusak, mulai kosong: %v", err)
		return
	}
	s.items = items
}

// Add: merge by identity key. Kalau sudah ada, quantity ditambah TANPA
// clamp atas; kalau belum, append di ekor.
func (s *Store) Add(ctx context.Context, sel Selection) {
	candidate := sel.item()
	for i := range s.items {
		if s.items[i].key() == candidate.key() {
			s.items[i].Quantity += candidate.Quantity
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, candidate)
	s.persist(ctx)
}

// Remove: size terisi -> hapus baris (id,size) itu saja; size kosong ->
// hapus SEMUA baris dengan id tsb. Tanpa match = no-op.
func (s *Store) Remove(ctx context.Context, productID int, selectedSize string) {
	kept := s.items[:0]
	for _, it := range s.items {
		match := it.ProductID == productID
		if selectedSize != "" {
			match = match && it.SelectedSize == selectedSize
		}
		if !match {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept
	s.persist(ctx)
}

// UpdateQuantity: size terisi -> baris exact; size kosong -> baris PERTAMA
// dengan id tsb (baris lain dengan id sama tidak disentuh). Hasil di luar
// [1,20] -> no-op diam-diam.
func (s *Store) UpdateQuantity(ctx context.Context, productID int, selectedSize string, delta int) {
	for i := range s.items {
		it := &s.items[i]
		if it.ProductID != productID {
			continue
		}
		if selectedSize != "" && it.SelectedSize != selectedSize {
			continue
		}
		newQty := it.Quantity + delta
		if newQty < MinQuantity || newQty > MaxQuantity {
			return
		}
		it.Quantity = newQty
		s.persist(ctx)
		return
	}
}

func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Items mengembalikan salinan, urutan display.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Total() float64 {
	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) ItemCount() int {
	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) LineCount() int { return len(s.items) }

// persist: tulis seluruh koleksi. Gagal tulis cuma di-log; state memory
// tetap otoritatif sampai proses mati (divergensi diterima, tidak ada
// rekonsiliasi).
func (s *Store) persist(ctx context.Context) {
	b, err := json.Marshal(s.itemsOrEmpty())
	if err != nil {
		log.Printf("cart persist: marshal: %v", err)
		return
	}
	if err := s.kv.Set(ctx, kvstore.KeyCart, b); err != nil {
		log.Printf("cart persist: write: %v", err)
	}
}

// snapshot selalu berupa array JSON, bukan null.
func (s *Store) itemsOrEmpty() []Item {
	if s.items == nil {
		return []Item{}
	}
	return s.items
}

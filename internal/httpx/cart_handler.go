package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ariefcatur/go-shopfront.git/internal/cart"
	"github.com/ariefcatur/go-shopfront.git/internal/catalog"
	"github.com/ariefcatur/go-shopfront.git/internal/session"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	Sessions *session.Manager
	Catalogs []*catalog.Catalog // urutan lookup product_id
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items", h.updateQuantity)
	r.Delete("/cart/items", h.removeItem)
	r.Delete("/cart", h.clearCart)
}

type addItemReq struct {
	ProductID    int    `json:"product_id"`
	SelectedSize string `json:"selected_size"`
	Quantity     int    `json:"quantity"`
}

type updateQuantityReq struct {
	ProductID    int    `json:"product_id"`
	SelectedSize string `json:"selected_size"`
	Delta        int    `json:"delta"`
}

type cartResp struct {
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"item_count"`
	LineCount int         `json:"line_count"`
}

func (h *CartHandler) find(id int) (catalog.Product, bool) {
	for _, c := range h.Catalogs {
		if p, ok := c.Find(id); ok {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (h *CartHandler) respond(w http.ResponseWriter, s *session.Session) {
	writeJSON(w, http.StatusOK, cartResp{
		Items:     s.Cart.Items(),
		Total:     s.Cart.Total(),
		ItemCount: s.Cart.ItemCount(),
		LineCount: s.Cart.LineCount(),
	})
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	h.respond(w, s)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	p, ok := h.find(req.ProductID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	s.Cart.Add(r.Context(), cart.Selection{
		Product:      p,
		SelectedSize: req.SelectedSize,
		Quantity:     req.Quantity,
	})
	h.respond(w, s)
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	// delta di luar [1,20] = no-op, tetap 200 + isi cart terkini
	s.Cart.UpdateQuantity(r.Context(), req.ProductID, req.SelectedSize, req.Delta)
	h.respond(w, s)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.URL.Query().Get("product_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing product_id"})
		return
	}
	// selected_size kosong = hapus semua varian product itu
	selectedSize := r.URL.Query().Get("selected_size")

	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	s.Cart.Remove(r.Context(), productID, selectedSize)
	h.respond(w, s)
}

func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	s.Cart.Clear(r.Context())
	h.respond(w, s)
}

package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-shopfront.git/internal/checkout"
	"github.com/ariefcatur/go-shopfront.git/internal/session"
	"github.com/go-chi/chi/v5"
)

type CheckoutHandler struct {
	Sessions *session.Manager
}

func (h *CheckoutHandler) Register(r *chi.Mux) {
	r.Get("/checkout", h.state)
	r.Post("/checkout/begin", h.begin)
	r.Post("/checkout/confirm", h.confirm)
	r.Post("/checkout/cancel", h.cancel)
	r.Post("/checkout/ack", h.acknowledge)
	r.Get("/orders", h.listOrders)
}

type checkoutResp struct {
	State checkout.State        `json:"state"`
	Order *checkout.OrderRecord `json:"order,omitempty"`
	Total float64               `json:"total"`
	Items int                   `json:"items"`
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, code int, s *session.Session) {
	writeJSON(w, code, checkoutResp{
		State: s.Checkout.State(),
		Order: s.Checkout.Current(),
		Total: s.Cart.Total(),
		Items: s.Cart.ItemCount(),
	})
}

func (h *CheckoutHandler) state(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	h.respond(w, http.StatusOK, s)
}

func (h *CheckoutHandler) begin(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	if !s.Checkout.Begin() {
		// cart kosong atau state salah; guard, bukan error server
		writeJSON(w, http.StatusConflict, map[string]string{"error": "cannot begin checkout"})
		return
	}
	h.respond(w, http.StatusOK, s)
}

func (h *CheckoutHandler) confirm(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()

	// sama seperti storefront: harus sign-in dulu buat place order
	u := s.User()
	if u == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "sign in to place an order"})
		return
	}

	rec := s.Checkout.Confirm(r.Context(), u.Email)
	if rec == nil {
		if s.Checkout.State() == checkout.StateReviewing {
			// unit atomik gagal persist; state & cart tidak berubah
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "order could not be saved"})
			return
		}
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no checkout in progress"})
		return
	}
	h.respond(w, http.StatusCreated, s)
}

func (h *CheckoutHandler) cancel(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	if !s.Checkout.Cancel() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no checkout in progress"})
		return
	}
	h.respond(w, http.StatusOK, s)
}

func (h *CheckoutHandler) acknowledge(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	if !s.Checkout.Acknowledge() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "nothing to acknowledge"})
		return
	}
	h.respond(w, http.StatusOK, s)
}

func (h *CheckoutHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"orders": s.Checkout.Orders(r.Context())})
}

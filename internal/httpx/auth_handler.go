package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/ariefcatur/go-shopfront.git/internal/session"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Sessions *session.Manager
}

func (h *AuthHandler) Register(r *chi.Mux) {
	r.Get("/auth/me", h.me)
	r.Post("/auth/signin", h.signIn)
	r.Post("/auth/signup", h.signUp)
	r.Post("/auth/signout", h.signOut)
}

type signInReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	u := s.User()
	if u == nil {
		writeJSON(w, http.StatusOK, map[string]any{"guest": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"guest": false, "user": u})
}

// signIn: identitas dipercaya apa adanya, password tidak dicek ke mana-mana.
// Validasi required-field di sini murni presentasi.
func (h *AuthHandler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	u := s.SignIn(r.Context(), req.Name, req.Email)
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *AuthHandler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}
	if req.Password != req.ConfirmPassword {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "passwords do not match"})
		return
	}

	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	u := s.SignIn(r.Context(), req.Name, req.Email)
	writeJSON(w, http.StatusCreated, map[string]any{"user": u})
}

func (h *AuthHandler) signOut(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.Sessions)
	s.Lock()
	defer s.Unlock()
	s.SignOut(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"guest": true})
}

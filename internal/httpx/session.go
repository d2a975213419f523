package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-shopfront.git/internal/session"
	"github.com/google/uuid"
)

const sessionCookie = "shopfront_sid"

// resolveSession ambil sid dari cookie (atau bikin baru), lalu ambil/buat
// sesi dari manager. Hydrate jalan sekali di dalam manager.
func resolveSession(w http.ResponseWriter, r *http.Request, m *session.Manager) *session.Session {
	var sid string
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		sid = c.Value
	} else {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			MaxAge:   30 * 24 * 3600,
		})
	}
	return m.Get(r.Context(), sid)
}

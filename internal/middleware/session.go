package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

// Session middleware resolves the browser's session from its cookie,
// starting a new session (and setting the cookie) when the cookie is
// missing or refers to an expired session
func Session(store *session.Store, cookieName string, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(cookieName); err == nil {
				id = cookie.Value
			}

			sess, created := store.GetOrCreate(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				logger.Debug("session started", "session_id", sess.ID, "previous_id", id)
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}

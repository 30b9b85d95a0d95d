package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/AriellAlcantara/Gamebackend/internal/api/apierr"
)

// AdminSecretHeader carries the shared operator secret for admin routes
const AdminSecretHeader = "X-Admin-Secret"

// AdminAuth gates admin routes behind a shared secret. An empty
// configured secret disables the routes entirely rather than leaving
// them open.
func AdminAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			presented := r.Header.Get(AdminSecretHeader)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

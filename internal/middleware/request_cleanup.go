package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes caps how much of an unread body is consumed so the keep-alive
// connection can be reused. Larger leftovers are just closed.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what the handler left unread in the request body, then closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}

			if _, err := io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes)); err != nil {
				log.Tracef("drain request body [%s]: %s", r.URL.Path, err)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body [%s]: %s", r.URL.Path, err)
			}
		})
	}
}

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/liftstats/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery keeps a panicking handler from taking the whole service down.
// The client gets a 500, the stack goes to the log (and to sentry, via the logrus hook).
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					http.Error(respWriter, "internal server error", http.StatusInternalServerError)
				}
			}()

			// handler call
			next.ServeHTTP(respWriter, req)
		})
	}
}

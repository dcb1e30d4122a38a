package health

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"

	pingTimeout = 3 * time.Second
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type Response struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       int64             `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	db          dbPinger
	redisClient *redis.Client
	versionInfo string
	startTime   time.Time
}

func NewHandler(db dbPinger, redisClient *redis.Client, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redisClient: redisClient,
		versionInfo: versionInfo,
		startTime:   time.Now(),
	}
}

// HandleHealth pings postgres and redis. Any failed dependency turns the answer into a 503.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "health.handler.check")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var dbErr, redisErr error
	// errors are kept per dependency, the group only waits
	var g errgroup.Group
	g.Go(func() error {
		dbErr = h.db.Ping(ctx)
		return nil
	})
	g.Go(func() error {
		redisErr = h.redisClient.Ping(ctx).Err()
		return nil
	})
	_ = g.Wait()

	resp := Response{
		Status:       statusHealthy,
		Version:      h.versionInfo,
		Uptime:       int64(time.Since(h.startTime).Seconds()),
		Dependencies: map[string]string{"postgres": statusHealthy, "redis": statusHealthy},
	}
	statusCode := http.StatusOK
	if dbErr != nil {
		log.Errorf("health: ping postgres: %s", dbErr)
		resp.Dependencies["postgres"] = statusUnhealthy
	}
	if redisErr != nil {
		log.Errorf("health: ping redis: %s", redisErr)
		resp.Dependencies["redis"] = statusUnhealthy
	}
	if dbErr != nil || redisErr != nil {
		resp.Status = statusDegraded
		statusCode = http.StatusServiceUnavailable
	}

	span.SetAttributes(attribute.String("health.status", resp.Status))
	pkg.WriteJSON(w, resp, statusCode)
}

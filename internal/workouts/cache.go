package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	FindUserByID(ctx context.Context, id int64) (*User, error)
	FindWorkoutByID(ctx context.Context, id int64) (*Workout, error)
	FindWorkoutsByUser(ctx context.Context, userID int64) (*Tree, error)
}

// CachedRepo keeps the loaded workout tree of each user in a freecache,
// for a limited time. Users and single workouts are always read from the underlying repo.
type CachedRepo struct {
	repo           workoutsRepo
	cache          *freecache.Cache
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewCachedRepo(
	repo workoutsRepo,
	cacheSizeMegabytes int,
	ttl time.Duration,
	metricsManager *metrics.Manager,
) *CachedRepo {
	megabyte := 1024 * 1024
	return &CachedRepo{
		repo:           repo,
		cache:          freecache.NewCache(cacheSizeMegabytes * megabyte),
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func (c *CachedRepo) FindUserByID(ctx context.Context, id int64) (*User, error) {
	return c.repo.FindUserByID(ctx, id)
}

func (c *CachedRepo) FindWorkoutByID(ctx context.Context, id int64) (*Workout, error) {
	return c.repo.FindWorkoutByID(ctx, id)
}

func (c *CachedRepo) FindWorkoutsByUser(ctx context.Context, userID int64) (*Tree, error) {
	cacheKey := []byte(treeCacheKey(userID))
	if treeBytes, err := c.cache.Get(cacheKey); err == nil {
		tree := &Tree{}
		if err := json.Unmarshal(treeBytes, tree); err == nil {
			tree.Reindex()
			c.countLookup("hit")
			return tree, nil
		} else {
			log.Errorf("failed to unmarshal cached workouts of user %d: %s", userID, err)
		}
	}
	c.countLookup("miss")

	return c.load(ctx, userID)
}

// FindWorkoutsByUserFresh skips the cached tree, reloads it from the underlying repo
// and caches the result.
func (c *CachedRepo) FindWorkoutsByUserFresh(ctx context.Context, userID int64) (*Tree, error) {
	c.countLookup("bypass")
	return c.load(ctx, userID)
}

func (c *CachedRepo) load(ctx context.Context, userID int64) (*Tree, error) {
	tree, err := c.repo.FindWorkoutsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	treeBytes, err := json.Marshal(tree)
	if err != nil {
		log.Errorf("failed to marshal workouts of user %d: %s", userID, err)
		return tree, nil
	}
	if err := c.cache.Set([]byte(treeCacheKey(userID)), treeBytes, int(c.ttl.Seconds())); err != nil {
		// freecache refuses entries larger than 1/1024 of its size
		log.Warnf("failed to cache workouts of user %d (%d bytes): %s", userID, len(treeBytes), err)
	}

	return tree, nil
}

// Invalidate drops the cached tree of the user.
func (c *CachedRepo) Invalidate(userID int64) bool {
	return c.cache.Del([]byte(treeCacheKey(userID)))
}

func (c *CachedRepo) countLookup(result string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterWorkoutsCache.WithLabelValues(result).Inc()
}

func treeCacheKey(userID int64) string {
	return fmt.Sprintf("workouts::user::%d", userID)
}

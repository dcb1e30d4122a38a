package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analytics_test

type WorkoutsRepo interface {
	FindUserByID(ctx context.Context, id int64) (*workouts.User, error)
	FindWorkoutByID(ctx context.Context, id int64) (*workouts.Workout, error)
	FindWorkoutsByUser(ctx context.Context, userID int64) (*workouts.Tree, error)
}

// freshTreeLoader is implemented by repos that may serve a stale tree,
// and can reload it on demand.
type freshTreeLoader interface {
	FindWorkoutsByUserFresh(ctx context.Context, userID int64) (*workouts.Tree, error)
}

type NewAnalyzerParams struct {
	Repo WorkoutsRepo
	// Location is used to tell which day "today" is. Defaults to UTC.
	Location *time.Location
	// Now defaults to time.Now.
	Now            func() time.Time
	MetricsManager *metrics.Manager
}

// Analyzer computes workout analytics from a user's loaded workout tree.
// It never writes, and keeps no state between calls.
type Analyzer struct {
	repo           WorkoutsRepo
	location       *time.Location
	now            func() time.Time
	metricsManager *metrics.Manager
}

func NewAnalyzer(params NewAnalyzerParams) *Analyzer {
	a := &Analyzer{
		repo:           params.Repo,
		location:       params.Location,
		now:            params.Now,
		metricsManager: params.MetricsManager,
	}
	if a.location == nil {
		a.location = time.UTC
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

func (a *Analyzer) today() time.Time {
	return civilDate(a.now().In(a.location))
}

func (a *Analyzer) loadTree(ctx context.Context, userID int64) (*workouts.Tree, error) {
	tree, err := a.repo.FindWorkoutsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load workouts of user %d: %w", userID, err)
	}
	return tree, nil
}

// reloadTree loads the user's tree past any cache. Repos without a cache
// already returned the latest tree, so nil is returned for them.
func (a *Analyzer) reloadTree(ctx context.Context, userID int64) (*workouts.Tree, error) {
	loader, ok := a.repo.(freshTreeLoader)
	if !ok {
		return nil, nil
	}
	tree, err := loader.FindWorkoutsByUserFresh(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload workouts of user %d: %w", userID, err)
	}
	return tree, nil
}

func (a *Analyzer) findUser(ctx context.Context, userID int64) (*workouts.User, error) {
	user, err := a.repo.FindUserByID(ctx, userID)
	if errors.Is(err, workouts.ErrUserNotFound) {
		return nil, notFound(err)
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	return user, nil
}

func (a *Analyzer) observe(operation string, start time.Time) {
	if a.metricsManager == nil {
		return
	}
	a.metricsManager.HistogramAnalyticsDuration.
		WithLabelValues(operation).
		Observe(time.Since(start).Seconds())
}

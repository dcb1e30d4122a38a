package analytics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// DateTimeLayout is the local date-time format accepted in query params, e.g. 2024-01-15T00:00:00.
const DateTimeLayout = "2006-01-02T15:04:05"

const RoutePrefix = "/api/v1/analytics"

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

// SetupRoutes mounts the analytics routes under RoutePrefix and returns their subrouter.
func (handler *Handler) SetupRoutes(r *mux.Router) *mux.Router {
	api := r.PathPrefix(RoutePrefix).Subrouter()
	api.HandleFunc("/users/{userId}/personal-records", handler.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("personal-records")
	api.HandleFunc("/users/{userId}/exercises/{exerciseId}/personal-record", handler.HandlePersonalRecord).Methods("GET", "OPTIONS").Name("personal-record")
	api.HandleFunc("/users/{userId}/exercises/{exerciseId}/progress", handler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("exercise-progress")
	api.HandleFunc("/workouts/{workoutId}/summary", handler.HandleWorkoutSummary).Methods("GET", "OPTIONS").Name("workout-summary")
	api.HandleFunc("/users/{userId}/stats", handler.HandleUserStats).Methods("GET", "OPTIONS").Name("user-stats")
	api.HandleFunc("/users/{userId}/volume-progress", handler.HandleVolumeProgress).Methods("GET", "OPTIONS").Name("volume-progress")
	api.HandleFunc("/users/{userId}/workout-summaries", handler.HandleWorkoutSummaries).Methods("GET", "OPTIONS").Name("workout-summaries")
	return api
}

func (handler *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.personalRecords")
	defer span.End()

	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := handler.analyzer.PersonalRecords(ctx, userID)
	if err != nil {
		handleAnalyzerError(w, err, fmt.Sprintf("get personal records of user %d", userID))
		return
	}

	pkg.WriteJSON(w, SortRecords(records), http.StatusOK)
}

func (handler *Handler) HandlePersonalRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.personalRecord")
	defer span.End()

	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	exerciseID, err := pathID(r, "exerciseId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pr, found, err := handler.analyzer.PersonalRecord(ctx, userID, exerciseID)
	if err != nil {
		handleAnalyzerError(w, err, fmt.Sprintf("get personal record of user %d, exercise %d", userID, exerciseID))
		return
	}
	if !found {
		http.Error(w, "error, no personal record yet", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, pr, http.StatusOK)
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.exerciseProgress")
	defer span.End()

	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	exerciseID, err := pathID(r, "exerciseId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dateRange, err := queryDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	progress, err := handler.analyzer.ExerciseProgress(ctx, ProgressParams{
		DateRange:  dateRange,
		UserID:     userID,
		ExerciseID: exerciseID,
	})
	if err != nil {
		handleAnalyzerError(w, err, fmt.Sprintf("get progress of user %d, exercise %d", userID, exerciseID))
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleWorkoutSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.workoutSummary")
	defer span.End()

	workoutID, err := pathID(r, "workoutId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := handler.analyzer.WorkoutSummary(ctx, workoutID)
	if err != nil {
		handleAnalyzerError(w, err, fmt.Sprintf("get summary of workout %d", workoutID))
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleWorkoutSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.workoutSummaries")
	defer span.End()

	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dateRange, err := queryDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summaries, err := handler.analyzer.WorkoutSummaries(ctx, SummariesParams{
		DateRange: dateRange,
		UserID:    userID,
	})
	if err != nil {
		handleAnalyzerError(w, err, fmt.Sprintf("get workout summaries of user %d", userID))
		return
	}

	pkg.WriteJSON(w, summaries, http.StatusOK)
}

func (handler *Handler) HandleUserStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.userStats")
	defer span.End()

	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := handler.analyzer.UserStats(ctx, userID)
	if err != nil {
		handleAnalyzerError(w, err, fmt.Sprintf("get stats of user %d", userID))
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleVolumeProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.volumeProgress")
	defer span.End()

	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dateRange, err := queryDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	period := r.URL.Query().Get("period")
	if period == "" {
		period = DefaultPeriod
	}

	progress, err := handler.analyzer.VolumeProgress(ctx, VolumeParams{
		DateRange: dateRange,
		UserID:    userID,
		Period:    period,
	})
	if err != nil {
		handleAnalyzerError(w, err, fmt.Sprintf("get volume progress of user %d", userID))
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func handleAnalyzerError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		log.Debugf("%s: %s", action, err)
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("failed to %s: %s", action, err)
		http.Error(w, "error, failed to "+action, http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		return 0, fmt.Errorf("error, %s empty", name)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error, %s NaN", name)
	}
	return id, nil
}

func queryDateRange(r *http.Request) (DateRange, error) {
	var dateRange DateRange
	from, err := queryDate(r, "startDate")
	if err != nil {
		return dateRange, err
	}
	to, err := queryDate(r, "endDate")
	if err != nil {
		return dateRange, err
	}
	dateRange.From, dateRange.To = from, to
	return dateRange, nil
}

func queryDate(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return nil, fmt.Errorf("error, invalid %s, expected format %s", name, DateTimeLayout)
	}
	return &t, nil
}

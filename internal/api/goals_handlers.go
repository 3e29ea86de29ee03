package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitrack/internal/service"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/limbo/fitrack/pkg/httputil"
	"github.com/limbo/fitrack/pkg/progress"
	"github.com/prometheus/client_golang/prometheus"
)

type CreateGoalRequest struct {
	Objective    string    `json:"objective"`
	StartWeight  float64   `json:"start_weight"`
	TargetWeight float64   `json:"target_weight"`
	Deadline     time.Time `json:"deadline"`
}

type DeadlineRequest struct {
	Deadline time.Time `json:"deadline"`
}

type ReactivateRequest struct {
	Deadline *time.Time `json:"deadline,omitempty"`
}

type RecommendationRequest struct {
	CurrentWeight float64   `json:"current_weight"`
	TargetWeight  float64   `json:"target_weight"`
	Deadline      time.Time `json:"deadline"`
}

type GetGoalsResponse struct {
	UserID string         `json:"uid"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Goals  []*entity.Goal `json:"goals"`
}

type ProgressResponse struct {
	GoalID string `json:"goal_id"`
	// Null until the user records a measurement
	Snapshot *progress.Snapshot `json:"snapshot"`
}

func goalIDFromPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create goal")
	if !ok {
		return
	}
	var req CreateGoalRequest
	if !decodeBody(w, r, logger, "create goal", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, &service.CreateGoalRequest{
		Objective:    entity.Objective(req.Objective),
		StartWeight:  req.StartWeight,
		TargetWeight: req.TargetWeight,
		Deadline:     req.Deadline,
	})
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	s.metrics.CounterGoalTransitions.With(prometheus.Labels{"transition": "created"}).Inc()
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.String("goal_id", goal.ID.String()))
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get goals")
	if !ok {
		return
	}
	limit := httputil.QueryInt(r, "limit", 10, 1, 50)
	page := httputil.QueryInt(r, "page", 1, 1, 1<<20)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	goals, err := s.goalsService.GetUserGoals(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "get goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Goals:  goals,
	})
	logger.Info("goals provided")
}

func (s *Server) GetActiveGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get active goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.GetActiveGoal(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get active goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get goal")
	if !ok {
		return
	}
	id, ok := goalIDFromPath(w, r, logger, "get goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.GetGoal(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

func (s *Server) GoalProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "goal progress")
	if !ok {
		return
	}
	id, ok := goalIDFromPath(w, r, logger, "goal progress")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	snapshot, err := s.goalsService.GoalProgress(ctx, id, uid, s.now())
	if err != nil {
		writeServiceError(w, logger, "goal progress", err)
		return
	}
	if snapshot != nil {
		s.metrics.CounterProgressComputed.Inc()
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProgressResponse{
		GoalID:   id.String(),
		Snapshot: snapshot,
	})
}

// goalTransition runs one of the goal state changes identified by its metric label.
func (s *Server) goalTransition(w http.ResponseWriter, r *http.Request, op, label string,
	apply func(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, op)
	if !ok {
		return
	}
	id, ok := goalIDFromPath(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	goal, err := apply(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	s.metrics.CounterGoalTransitions.With(prometheus.Labels{"transition": label}).Inc()
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal state changed", slog.String("goal_id", goal.ID.String()), slog.String("transition", label))
}

func (s *Server) ExtendDeadline(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DeadlineRequest
	if !decodeBody(w, r, logger, "extend deadline", &req) {
		return
	}
	s.goalTransition(w, r, "extend deadline", "extended", func(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
		return s.goalsService.ExtendDeadline(ctx, goalID, uid, req.Deadline)
	})
}

func (s *Server) MarkFulfilled(w http.ResponseWriter, r *http.Request) {
	s.goalTransition(w, r, "fulfil goal", "fulfilled", s.goalsService.MarkFulfilled)
}

func (s *Server) StopGoal(w http.ResponseWriter, r *http.Request) {
	s.goalTransition(w, r, "stop goal", "stopped", s.goalsService.StopGoal)
}

func (s *Server) ReactivateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ReactivateRequest
	// Body is optional while the old deadline is still ahead
	if r.ContentLength != 0 {
		if !decodeBody(w, r, logger, "reactivate goal", &req) {
			return
		}
	}
	s.goalTransition(w, r, "reactivate goal", "reactivated", func(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
		return s.goalsService.ReactivateGoal(ctx, goalID, uid, req.Deadline)
	})
}

func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RecommendationRequest
	if !decodeBody(w, r, logger, "recommendation", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	rec, err := s.goalsService.Recommend(ctx, &service.RecommendationRequest{
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		Deadline:      req.Deadline,
	}, s.now())
	if err != nil {
		writeServiceError(w, logger, "recommendation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rec)
}

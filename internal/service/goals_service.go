package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/internal/repository"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/limbo/fitrack/pkg/progress"
)

// Deadlines closer than this to now are rejected.
const minDeadlineLead = 24 * time.Hour

type GoalsService struct {
	goalsRepo        repository.GoalsRepositoryI
	measurementsRepo repository.MeasurementsRepositoryI
	engine           *progress.Engine
	now              func() time.Time
}

type GoalsOption func(*GoalsService)

func WithClock(now func() time.Time) GoalsOption {
	return func(gs *GoalsService) {
		gs.now = now
	}
}

func WithEngine(engine *progress.Engine) GoalsOption {
	return func(gs *GoalsService) {
		gs.engine = engine
	}
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, measurementsRepo repository.MeasurementsRepositoryI, opts ...GoalsOption) *GoalsService {
	if goalsRepo == nil || measurementsRepo == nil {
		log.Fatal("on goals service provided nil repos")
	}
	gs := &GoalsService{
		goalsRepo:        goalsRepo,
		measurementsRepo: measurementsRepo,
		engine:           progress.NewEngine(progress.DefaultTolerance),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

func (gs *GoalsService) consistent(req *CreateGoalRequest) bool {
	switch req.Objective {
	case entity.ObjectiveReduce:
		return req.TargetWeight < req.StartWeight
	case entity.ObjectiveGain:
		return req.TargetWeight > req.StartWeight
	default:
		return math.Abs(req.TargetWeight-req.StartWeight) <= gs.engine.CompletionBand()
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := gs.now()
	if req.Deadline.Before(now.Add(minDeadlineLead)) {
		return nil, errorvalues.ErrDeadlineTooSoon
	}
	if !gs.consistent(req) {
		return nil, errorvalues.ErrGoalInconsistent
	}
	_, err := gs.goalsRepo.GetActive(ctx, uid)
	switch {
	case err == nil:
		return nil, errorvalues.ErrActiveGoalExists
	case !errors.Is(err, errorvalues.ErrGoalNotFound):
		return nil, errors.New("goals repository error: " + err.Error())
	}
	id, err := gs.goalsRepo.Create(ctx, &entity.Goal{
		UserID:       uid,
		Objective:    req.Objective,
		StartWeight:  req.StartWeight,
		TargetWeight: req.TargetWeight,
		StartedAt:    now,
		Deadline:     req.Deadline,
		Active:       true,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrActiveGoalExists):
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal, err := gs.goalsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}

func (gs *GoalsService) GetActiveGoal(ctx context.Context, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.goalsRepo.GetActive(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error) {
	goals, err := gs.goalsRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) save(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	err := gs.goalsRepo.UpdateState(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) || errors.Is(err, errorvalues.ErrActiveGoalExists) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) ExtendDeadline(ctx context.Context, goalID, uid uuid.UUID, deadline time.Time) (*entity.Goal, error) {
	goal, err := gs.GetGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	if !goal.Active {
		return nil, errorvalues.ErrGoalNotActive
	}
	if !deadline.After(goal.Deadline) || !deadline.After(gs.now()) {
		return nil, errorvalues.ErrDeadlineTooSoon
	}
	goal.Deadline = deadline
	return gs.save(ctx, goal)
}

// MarkFulfilled also deactivates the goal so a new one can be started.
func (gs *GoalsService) MarkFulfilled(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.GetGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	if goal.Fulfilled && !goal.Active {
		return goal, nil
	}
	goal.Fulfilled = true
	goal.Active = false
	return gs.save(ctx, goal)
}

func (gs *GoalsService) StopGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.GetGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	if !goal.Active {
		return goal, nil
	}
	goal.Active = false
	return gs.save(ctx, goal)
}

func (gs *GoalsService) ReactivateGoal(ctx context.Context, goalID, uid uuid.UUID, deadline *time.Time) (*entity.Goal, error) {
	goal, err := gs.GetGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	if goal.Active {
		return goal, nil
	}
	active, err := gs.goalsRepo.GetActive(ctx, uid)
	switch {
	case err == nil && active.ID != goal.ID:
		return nil, errorvalues.ErrActiveGoalExists
	case err != nil && !errors.Is(err, errorvalues.ErrGoalNotFound):
		return nil, errors.New("goals repository error: " + err.Error())
	}
	now := gs.now()
	if deadline == nil && !goal.Deadline.After(now) {
		return nil, errorvalues.ErrDeadlineRequired
	}
	if deadline != nil {
		if deadline.Before(now.Add(minDeadlineLead)) {
			return nil, errorvalues.ErrDeadlineTooSoon
		}
		goal.Deadline = *deadline
	}
	goal.Active = true
	goal.Fulfilled = false
	return gs.save(ctx, goal)
}

func (gs *GoalsService) GoalProgress(ctx context.Context, goalID, uid uuid.UUID, now time.Time) (*progress.Snapshot, error) {
	goal, err := gs.GetGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	m, err := gs.measurementsRepo.GetLatest(ctx, uid, now)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMeasurementNotFound) {
			return nil, nil
		}
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	return gs.engine.ComputeProgress(goal, &m.WeightKg, now), nil
}

func (gs *GoalsService) Recommend(ctx context.Context, req *RecommendationRequest, now time.Time) (*progress.Recommendation, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	rec := progress.RecommendWeeklyRate(req.CurrentWeight, req.TargetWeight, progress.DaysRemaining(req.Deadline, now))
	return &rec, nil
}

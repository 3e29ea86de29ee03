package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/limbo/fitrack/pkg/progress"
	"github.com/limbo/fitrack/pkg/reminder"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateGoalRequest struct {
	Objective    entity.Objective `validate:"required,oneof=reduce gain maintain"`
	StartWeight  float64          `validate:"required,gte=20,lte=400"`
	TargetWeight float64          `validate:"required,gte=20,lte=400"`
	Deadline     time.Time        `validate:"required"`
}

type RecommendationRequest struct {
	CurrentWeight float64   `validate:"required,gte=20,lte=400"`
	TargetWeight  float64   `validate:"required,gte=20,lte=400"`
	Deadline      time.Time `validate:"required"`
}

type MeasurementRequest struct {
	WeightKg   float64   `validate:"required,gte=10,lte=400"`
	HeightCm   *float64  `validate:"omitempty,gte=50,lte=250"`
	BodyFatPct *float64  `validate:"omitempty,gte=1,lte=75"`
	TakenAt    time.Time `validate:"-"`
}

type ReminderRequest struct {
	Cadence string `validate:"required,oneof=daily weekly biweekly monthly"`
	Hour    int    `validate:"gte=0,lte=23"`
	Minute  int    `validate:"gte=0,lte=59"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type Assessment struct {
	Measurement entity.Measurement   `json:"measurement"`
	BMI         *float64             `json:"bmi,omitempty"`
	BMIBand     progress.BMIBand     `json:"bmi_band,omitempty"`
	BodyFatBand progress.BodyFatBand `json:"body_fat_band,omitempty"`
}

type NextReminder struct {
	FireAt   time.Time         `json:"fire_at"`
	Schedule reminder.Schedule `json:"schedule"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	GetActiveGoal(ctx context.Context, uid uuid.UUID) (*entity.Goal, error)
	GetUserGoals(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Goal, error)
	ExtendDeadline(ctx context.Context, goalID, uid uuid.UUID, deadline time.Time) (*entity.Goal, error)
	MarkFulfilled(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	StopGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	// Deadline is required only when the old one has elapsed
	ReactivateGoal(ctx context.Context, goalID, uid uuid.UUID, deadline *time.Time) (*entity.Goal, error)
	// Returns nil snapshot when user has no measurement yet
	GoalProgress(ctx context.Context, goalID, uid uuid.UUID, now time.Time) (*progress.Snapshot, error)
	Recommend(ctx context.Context, req *RecommendationRequest, now time.Time) (*progress.Recommendation, error)
}

type MeasurementsServiceI interface {
	RecordMeasurement(ctx context.Context, uid uuid.UUID, req *MeasurementRequest) (*entity.Measurement, error)
	GetMeasurements(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Measurement, error)
	LatestMeasurement(ctx context.Context, uid uuid.UUID, at time.Time) (*entity.Measurement, error)
	Assess(ctx context.Context, uid uuid.UUID, sex string) (*Assessment, error)
}

type RemindersServiceI interface {
	GetReminder(ctx context.Context, uid uuid.UUID) (*entity.ReminderConfig, error)
	UpdateReminder(ctx context.Context, uid uuid.UUID, req *ReminderRequest) (*entity.ReminderConfig, error)
	// Activation requires the client to report granted notification permissions
	EnableReminder(ctx context.Context, uid uuid.UUID, permissionsGranted bool) (*entity.ReminderConfig, error)
	DisableReminder(ctx context.Context, uid uuid.UUID) (*entity.ReminderConfig, error)
	NextReminder(ctx context.Context, uid uuid.UUID, now time.Time) (*NextReminder, error)
}

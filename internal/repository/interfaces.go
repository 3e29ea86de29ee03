package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitrack/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Creates new goal. Objective, weights, dates and UserID are necessary
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Returns the only active goal of user
	GetActive(ctx context.Context, uid uuid.UUID) (*entity.Goal, error)
	// Lists goals owned by user with uid, newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Goal, error)
	// Updates deadline, active and fulfilled flags by ID
	UpdateState(ctx context.Context, goal *entity.Goal) error
}

type MeasurementsRepositoryI interface {
	Create(ctx context.Context, m *entity.Measurement) (int64, error)
	// Provides measurements of user for a period, oldest first
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Measurement, error)
	// Returns the most recent measurement taken at or before at
	GetLatest(ctx context.Context, uid uuid.UUID, at time.Time) (*entity.Measurement, error)
}

type RemindersRepositoryI interface {
	// Returns nil config without error when user has none stored
	Get(ctx context.Context, uid uuid.UUID) (*entity.ReminderConfig, error)
	Upsert(ctx context.Context, cfg *entity.ReminderConfig) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

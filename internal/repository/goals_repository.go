package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/pkg/entity"
)

const goalColumns = `id, user_id, objective, start_weight, target_weight, started_at, deadline, active, fulfilled, created_at, updated_at`

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	mustPing(conn, "goalsRepo")
	return &GoalsRepository{
		conn: conn,
	}
}

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var g entity.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Objective, &g.StartWeight, &g.TargetWeight,
		&g.StartedAt, &g.Deadline, &g.Active, &g.Fulfilled, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error) {
	var id uuid.UUID
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (user_id, objective, start_weight, target_weight, started_at, deadline, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		goal.UserID,
		goal.Objective,
		goal.StartWeight,
		goal.TargetWeight,
		goal.StartedAt,
		goal.Deadline,
		goal.Active,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on the one-active-goal index
			case "23505":
				return uuid.UUID{}, errorvalues.ErrActiveGoalExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating goal db error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, err := scanGoal(gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) GetActive(ctx context.Context, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := scanGoal(gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE user_id = $1 AND active;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting active goal error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, 0)
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+`
		FROM goals WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting goals by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning goals: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) UpdateState(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET deadline = $1, active = $2, fulfilled = $3, updated_at = NOW() WHERE id = $4;`,
		goal.Deadline, goal.Active, goal.Fulfilled, goal.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrActiveGoalExists
		}
		return errors.New("updating goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

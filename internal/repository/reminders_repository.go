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

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	mustPing(conn, "remindersRepo")
	return &RemindersRepository{
		conn: conn,
	}
}

func (rr *RemindersRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.ReminderConfig, error) {
	var cfg entity.ReminderConfig
	row := rr.conn.QueryRow(ctx, `SELECT user_id, cadence, hour, minute, active, updated_at FROM reminders WHERE user_id = $1;`, uid)
	if err := row.Scan(&cfg.UserID, &cfg.Cadence, &cfg.Hour, &cfg.Minute, &cfg.Active, &cfg.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting reminder error: " + err.Error())
	}
	return &cfg, nil
}

func (rr *RemindersRepository) Upsert(ctx context.Context, cfg *entity.ReminderConfig) error {
	err := rr.conn.QueryRow(ctx, `INSERT INTO reminders (user_id, cadence, hour, minute, active) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET cadence = EXCLUDED.cadence, hour = EXCLUDED.hour,
		minute = EXCLUDED.minute, active = EXCLUDED.active, updated_at = NOW()
		RETURNING updated_at;`,
		cfg.UserID, cfg.Cadence, cfg.Hour, cfg.Minute, cfg.Active,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// FK violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("saving reminder error: " + err.Error())
	}
	return nil
}

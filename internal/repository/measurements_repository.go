package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/pkg/entity"
)

type MeasurementsRepository struct {
	conn PgConnection
}

func NewMeasurementsRepoWithConn(conn PgConnection) *MeasurementsRepository {
	mustPing(conn, "measurementsRepo")
	return &MeasurementsRepository{
		conn: conn,
	}
}

func (mr *MeasurementsRepository) Create(ctx context.Context, m *entity.Measurement) (int64, error) {
	var id int64
	row := mr.conn.QueryRow(
		ctx,
		`INSERT INTO measurements (user_id, weight_kg, height_cm, body_fat_pct, taken_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		m.UserID,
		m.WeightKg,
		m.HeightCm,
		m.BodyFatPct,
		m.TakenAt,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		// FK violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, errorvalues.ErrOwnerNotFound
		}
		return 0, errors.New("creating measurement error: " + err.Error())
	}
	return id, nil
}

func (mr *MeasurementsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Measurement, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT id, user_id, weight_kg, height_cm, body_fat_pct, taken_at, created_at FROM measurements
		WHERE user_id = $1 AND taken_at >= $2 AND taken_at <= $3 ORDER BY taken_at;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting measurements for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Measurement, 0, 8)
	for rows.Next() {
		m := entity.Measurement{}
		err = rows.Scan(&m.ID, &m.UserID, &m.WeightKg, &m.HeightCm, &m.BodyFatPct, &m.TakenAt, &m.CreatedAt)
		if err != nil {
			return nil, errors.New("measurement row parsing error: " + err.Error())
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected measurement rows error: " + err.Error())
	}
	return result, nil
}

func (mr *MeasurementsRepository) GetLatest(ctx context.Context, uid uuid.UUID, at time.Time) (*entity.Measurement, error) {
	row := mr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, weight_kg, height_cm, body_fat_pct, taken_at, created_at FROM measurements
		WHERE user_id = $1 AND taken_at <= $2 ORDER BY taken_at DESC, id DESC LIMIT 1;`,
		uid,
		at,
	)
	var m entity.Measurement
	if err := row.Scan(&m.ID, &m.UserID, &m.WeightKg, &m.HeightCm, &m.BodyFatPct, &m.TakenAt, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMeasurementNotFound
		}
		return nil, errors.New("getting latest measurement error: " + err.Error())
	}
	return &m, nil
}

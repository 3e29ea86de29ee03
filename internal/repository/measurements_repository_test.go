package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/internal/repository"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var measurementColumns = []string{"id", "user_id", "weight_kg", "height_cm", "body_fat_pct", "taken_at", "created_at"}

func TestCreateMeasurement(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMeasurementsRepoWithConn(mock)
	height := 178.0
	m := entity.Measurement{
		UserID:   uuid.New(),
		WeightKg: 80.1,
		HeightCm: &height,
		TakenAt:  time.Now(),
	}
	query := regexp.QuoteMeta(`INSERT INTO measurements (user_id, weight_kg, height_cm, body_fat_pct, taken_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	args := []any{m.UserID, m.WeightKg, m.HeightCm, m.BodyFatPct, m.TakenAt}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating measurement error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.Create(ctx, &m)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(7), id)
		})
	}
}

func TestGetMeasurements(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMeasurementsRepoWithConn(mock)
	uid := uuid.New()
	height, fat := 170.0, 21.5
	now := time.Now().Truncate(time.Second)
	from := now.AddDate(0, 0, -7)
	first := entity.Measurement{ID: 1, UserID: uid, WeightKg: 71, HeightCm: &height, BodyFatPct: &fat, TakenAt: from, CreatedAt: from}
	second := entity.Measurement{ID: 2, UserID: uid, WeightKg: 70.2, HeightCm: &height, BodyFatPct: &fat, TakenAt: now, CreatedAt: now}
	rangeQuery := regexp.QuoteMeta(`WHERE user_id = $1 AND taken_at >= $2 AND taken_at <= $3 ORDER BY taken_at;`)
	latestQuery := regexp.QuoteMeta(`WHERE user_id = $1 AND taken_at <= $2 ORDER BY taken_at DESC, id DESC LIMIT 1;`)
	ctx := context.Background()

	t.Run("range", func(t *testing.T) {
		rows := pgxmock.NewRows(measurementColumns).
			AddRow(first.ID, first.UserID, first.WeightKg, first.HeightCm, first.BodyFatPct, first.TakenAt, first.CreatedAt).
			AddRow(second.ID, second.UserID, second.WeightKg, second.HeightCm, second.BodyFatPct, second.TakenAt, second.CreatedAt)
		mock.ExpectQuery(rangeQuery).WithArgs(uid, from, now).WillReturnRows(rows)
		result, err := repo.GetByUserAndDateRange(ctx, uid, from, now)
		require.NoError(t, err)
		assert.Equal(t, []entity.Measurement{first, second}, result)
	})
	t.Run("latest", func(t *testing.T) {
		rows := pgxmock.NewRows(measurementColumns).
			AddRow(second.ID, second.UserID, second.WeightKg, second.HeightCm, second.BodyFatPct, second.TakenAt, second.CreatedAt)
		mock.ExpectQuery(latestQuery).WithArgs(uid, now).WillReturnRows(rows)
		result, err := repo.GetLatest(ctx, uid, now)
		require.NoError(t, err)
		assert.Equal(t, second, *result)
	})
	t.Run("no measurements", func(t *testing.T) {
		mock.ExpectQuery(latestQuery).WithArgs(uid, now).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetLatest(ctx, uid, now)
		assert.ErrorIs(t, err, errorvalues.ErrMeasurementNotFound)
	})
	t.Run("range db error", func(t *testing.T) {
		mock.ExpectQuery(rangeQuery).WithArgs(uid, from, now).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDateRange(ctx, uid, from, now)
		assert.EqualError(t, err, "getting measurements for period error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

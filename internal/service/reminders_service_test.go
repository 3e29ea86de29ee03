package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/internal/repository/mocks"
	"github.com/limbo/fitrack/internal/service"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/limbo/fitrack/pkg/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderStateMachine(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRemindersRepositoryI(ctrl)
	serv := service.NewRemindersService(repo)
	userID := uuid.New()
	ctx := context.Background()

	t.Run("default when missing", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
		cfg, err := serv.GetReminder(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, &entity.ReminderConfig{UserID: userID, Cadence: "daily", Hour: 9}, cfg)
	})
	t.Run("permission denied keeps inactive", func(t *testing.T) {
		_, err := serv.EnableReminder(ctx, userID, false)
		assert.ErrorIs(t, err, errorvalues.ErrPermissionDenied)
	})
	t.Run("enable", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg *entity.ReminderConfig) error {
			assert.True(t, cfg.Active)
			return nil
		})
		cfg, err := serv.EnableReminder(ctx, userID, true)
		require.NoError(t, err)
		assert.True(t, cfg.Active)
	})
	t.Run("disable", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), userID).Return(&entity.ReminderConfig{UserID: userID, Cadence: "weekly", Hour: 8, Active: true}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		cfg, err := serv.DisableReminder(ctx, userID)
		require.NoError(t, err)
		assert.False(t, cfg.Active)
	})
	t.Run("repository error", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("db error"))
		_, err := serv.DisableReminder(ctx, userID)
		assert.EqualError(t, err, "reminders repository error: db error")
	})
}

func TestUpdateReminder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRemindersRepositoryI(ctrl)
	serv := service.NewRemindersService(repo)
	userID := uuid.New()
	ctx := context.Background()

	repo.EXPECT().Get(gomock.Any(), userID).Return(&entity.ReminderConfig{UserID: userID, Cadence: "daily", Hour: 9, Active: true}, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	cfg, err := serv.UpdateReminder(ctx, userID, &service.ReminderRequest{Cadence: "monthly", Hour: 0, Minute: 45})
	require.NoError(t, err)
	assert.Equal(t, "monthly", cfg.Cadence)
	assert.Equal(t, 0, cfg.Hour)
	assert.Equal(t, 45, cfg.Minute)
	assert.True(t, cfg.Active)

	_, err = serv.UpdateReminder(ctx, userID, &service.ReminderRequest{Cadence: "hourly", Hour: 10})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	_, err = serv.UpdateReminder(ctx, userID, &service.ReminderRequest{Cadence: "daily", Hour: 24})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestNextReminder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRemindersRepositoryI(ctrl)
	serv := service.NewRemindersService(repo)
	userID := uuid.New()
	ctx := context.Background()
	now := time.Date(2024, time.July, 1, 21, 0, 0, 0, time.UTC)

	repo.EXPECT().Get(gomock.Any(), userID).Return(&entity.ReminderConfig{UserID: userID, Cadence: "weekly", Hour: 20, Minute: 30, Active: true}, nil)
	next, err := serv.NextReminder(ctx, userID, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.July, 8, 20, 30, 0, 0, time.UTC), next.FireAt)
	assert.Equal(t, reminder.Weekly, next.Schedule.Cadence)
	assert.Equal(t, "20:30", next.Schedule.Anchor)

	repo.EXPECT().Get(gomock.Any(), userID).Return(&entity.ReminderConfig{UserID: userID, Cadence: "weekly", Hour: 20}, nil)
	_, err = serv.NextReminder(ctx, userID, now)
	assert.ErrorIs(t, err, errorvalues.ErrReminderInactive)
}

package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/internal/repository"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/limbo/fitrack/pkg/reminder"
)

// Used until the user saves their own reminder.
const (
	defaultCadence = reminder.Daily
	defaultHour    = 9
	defaultMinute  = 0
)

type RemindersService struct {
	repo repository.RemindersRepositoryI
}

func NewRemindersService(repo repository.RemindersRepositoryI) *RemindersService {
	if repo == nil {
		log.Fatal("provided nil remindersRepo")
	}
	return &RemindersService{
		repo: repo,
	}
}

func (rs *RemindersService) GetReminder(ctx context.Context, uid uuid.UUID) (*entity.ReminderConfig, error) {
	cfg, err := rs.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	if cfg == nil {
		cfg = &entity.ReminderConfig{
			UserID:  uid,
			Cadence: string(defaultCadence),
			Hour:    defaultHour,
			Minute:  defaultMinute,
		}
	}
	return cfg, nil
}

func (rs *RemindersService) save(ctx context.Context, cfg *entity.ReminderConfig) (*entity.ReminderConfig, error) {
	if err := rs.repo.Upsert(ctx, cfg); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return cfg, nil
}

func (rs *RemindersService) UpdateReminder(ctx context.Context, uid uuid.UUID, req *ReminderRequest) (*entity.ReminderConfig, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	cfg, err := rs.GetReminder(ctx, uid)
	if err != nil {
		return nil, err
	}
	cfg.Cadence = req.Cadence
	cfg.Hour = req.Hour
	cfg.Minute = req.Minute
	return rs.save(ctx, cfg)
}

func (rs *RemindersService) EnableReminder(ctx context.Context, uid uuid.UUID, permissionsGranted bool) (*entity.ReminderConfig, error) {
	if !permissionsGranted {
		return nil, errorvalues.ErrPermissionDenied
	}
	cfg, err := rs.GetReminder(ctx, uid)
	if err != nil {
		return nil, err
	}
	if cfg.Active {
		return cfg, nil
	}
	cfg.Active = true
	return rs.save(ctx, cfg)
}

func (rs *RemindersService) DisableReminder(ctx context.Context, uid uuid.UUID) (*entity.ReminderConfig, error) {
	cfg, err := rs.GetReminder(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !cfg.Active {
		return cfg, nil
	}
	cfg.Active = false
	return rs.save(ctx, cfg)
}

func (rs *RemindersService) NextReminder(ctx context.Context, uid uuid.UUID, now time.Time) (*NextReminder, error) {
	cfg, err := rs.GetReminder(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !cfg.Active {
		return nil, errorvalues.ErrReminderInactive
	}
	cadence, err := reminder.ParseCadence(cfg.Cadence)
	if err != nil {
		return nil, err
	}
	fireAt, err := reminder.NextOccurrence(cadence, cfg.Hour, cfg.Minute, now)
	if err != nil {
		return nil, err
	}
	schedule, err := reminder.DescribeRepeatingSchedule(cadence, cfg.Hour, cfg.Minute)
	if err != nil {
		return nil, err
	}
	return &NextReminder{
		FireAt:   fireAt,
		Schedule: schedule,
	}, nil
}

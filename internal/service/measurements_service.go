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
	"github.com/limbo/fitrack/pkg/progress"
)

type MeasurementsService struct {
	repo repository.MeasurementsRepositoryI
	now  func() time.Time
}

func NewMeasurementsService(repo repository.MeasurementsRepositoryI) *MeasurementsService {
	if repo == nil {
		log.Fatal("provided nil measurementsRepo")
	}
	return &MeasurementsService{
		repo: repo,
		now:  time.Now,
	}
}

func (ms *MeasurementsService) RecordMeasurement(ctx context.Context, uid uuid.UUID, req *MeasurementRequest) (*entity.Measurement, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := ms.now()
	takenAt := req.TakenAt
	if takenAt.IsZero() {
		takenAt = now
	}
	if takenAt.After(now) {
		return nil, errorvalues.ErrMeasurementInFuture
	}
	m := entity.Measurement{
		UserID:     uid,
		WeightKg:   req.WeightKg,
		HeightCm:   req.HeightCm,
		BodyFatPct: req.BodyFatPct,
		TakenAt:    takenAt,
		CreatedAt:  now,
	}
	id, err := ms.repo.Create(ctx, &m)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	m.ID = id
	return &m, nil
}

func (ms *MeasurementsService) GetMeasurements(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Measurement, error) {
	measurements, err := ms.repo.GetByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	return measurements, nil
}

func (ms *MeasurementsService) LatestMeasurement(ctx context.Context, uid uuid.UUID, at time.Time) (*entity.Measurement, error) {
	m, err := ms.repo.GetLatest(ctx, uid, at)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMeasurementNotFound) {
			return nil, err
		}
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	return m, nil
}

// Assess classifies the latest measurement. BMI needs a recorded height,
// the body fat band needs a body fat value and sex.
func (ms *MeasurementsService) Assess(ctx context.Context, uid uuid.UUID, sex string) (*Assessment, error) {
	m, err := ms.LatestMeasurement(ctx, uid, ms.now())
	if err != nil {
		return nil, err
	}
	if m.HeightCm == nil && m.BodyFatPct == nil {
		return nil, errorvalues.ErrNoHeight
	}
	result := &Assessment{Measurement: *m}
	if m.HeightCm != nil {
		bmi, err := progress.CalculateBMI(*m.HeightCm, m.WeightKg)
		if err != nil {
			return nil, err
		}
		result.BMI = &bmi
		result.BMIBand = progress.ClassifyBMI(bmi)
	}
	if m.BodyFatPct != nil && sex != "" {
		band, err := progress.ClassifyBodyFat(sex, *m.BodyFatPct)
		if err != nil {
			return nil, err
		}
		result.BodyFatBand = band
	}
	if result.BMI == nil && result.BodyFatBand == "" {
		// body fat alone cannot be banded without a sex
		return nil, progress.ErrUnknownSex
	}
	return result, nil
}

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/fitrack/internal/service"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/limbo/fitrack/pkg/httputil"
)

// Range served when the client omits from.
const defaultMeasurementsWindow = 30 * 24 * time.Hour

type MeasurementRequest struct {
	WeightKg   float64    `json:"weight_kg"`
	HeightCm   *float64   `json:"height_cm,omitempty"`
	BodyFatPct *float64   `json:"body_fat_pct,omitempty"`
	TakenAt    *time.Time `json:"taken_at,omitempty"`
}

type GetMeasurementsResponse struct {
	UserID       string               `json:"uid"`
	From         time.Time            `json:"from"`
	To           time.Time            `json:"to"`
	Measurements []entity.Measurement `json:"measurements"`
}

func (s *Server) RecordMeasurement(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "record measurement")
	if !ok {
		return
	}
	var req MeasurementRequest
	if !decodeBody(w, r, logger, "record measurement", &req) {
		return
	}
	sreq := &service.MeasurementRequest{
		WeightKg:   req.WeightKg,
		HeightCm:   req.HeightCm,
		BodyFatPct: req.BodyFatPct,
	}
	if req.TakenAt != nil {
		sreq.TakenAt = *req.TakenAt
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	m, err := s.measurementsService.RecordMeasurement(ctx, uid, sreq)
	if err != nil {
		writeServiceError(w, logger, "record measurement", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, m)
	logger.Info("measurement recorded", slog.Int64("measurement_id", m.ID))
}

func (s *Server) GetMeasurements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get measurements")
	if !ok {
		return
	}
	to, err := httputil.QueryTime(r, "to", s.now())
	if err != nil {
		logger.Error("get measurements error: invalid to parameter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'to' parameter, RFC3339 expected", err)
		return
	}
	from, err := httputil.QueryTime(r, "from", to.Add(-defaultMeasurementsWindow))
	if err != nil {
		logger.Error("get measurements error: invalid from parameter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'from' parameter, RFC3339 expected", err)
		return
	}
	if from.After(to) {
		logger.Error("get measurements error: reversed range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "'from' must not be after 'to'", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	measurements, err := s.measurementsService.GetMeasurements(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "get measurements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMeasurementsResponse{
		UserID:       uid.String(),
		From:         from,
		To:           to,
		Measurements: measurements,
	})
}

func (s *Server) Assess(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "assessment")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	assessment, err := s.measurementsService.Assess(ctx, uid, r.URL.Query().Get("sex"))
	if err != nil {
		writeServiceError(w, logger, "assessment", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, assessment)
}

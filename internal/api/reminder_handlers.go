package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/fitrack/internal/service"
	"github.com/limbo/fitrack/pkg/httputil"
)

type ReminderRequest struct {
	Cadence string `json:"cadence"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
}

// Outcome of the permission prompts shown by the client.
type EnableReminderRequest struct {
	NotificationsGranted bool `json:"notifications_granted"`
	ExactAlarmsGranted   bool `json:"exact_alarms_granted"`
}

type NextReminderResponse struct {
	*service.NextReminder
	Timezone string `json:"timezone"`
}

func (s *Server) GetReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get reminder")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	cfg, err := s.remindersService.GetReminder(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cfg)
}

func (s *Server) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "update reminder")
	if !ok {
		return
	}
	var req ReminderRequest
	if !decodeBody(w, r, logger, "update reminder", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	cfg, err := s.remindersService.UpdateReminder(ctx, uid, &service.ReminderRequest{
		Cadence: req.Cadence,
		Hour:    req.Hour,
		Minute:  req.Minute,
	})
	if err != nil {
		writeServiceError(w, logger, "update reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cfg)
	logger.Info("reminder updated", slog.String("cadence", cfg.Cadence))
}

func (s *Server) EnableReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "enable reminder")
	if !ok {
		return
	}
	var req EnableReminderRequest
	if !decodeBody(w, r, logger, "enable reminder", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	cfg, err := s.remindersService.EnableReminder(ctx, uid, req.NotificationsGranted && req.ExactAlarmsGranted)
	if err != nil {
		writeServiceError(w, logger, "enable reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cfg)
	logger.Info("reminder enabled")
}

func (s *Server) DisableReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "disable reminder")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	cfg, err := s.remindersService.DisableReminder(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "disable reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cfg)
	logger.Info("reminder disabled")
}

// NextReminder computes the fire time in the caller's zone, given as ?tz=Europe/Berlin. UTC by default.
func (s *Server) NextReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "next reminder")
	if !ok {
		return
	}
	loc := time.UTC
	if tz := r.URL.Query().Get("tz"); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			logger.Error("next reminder error: unknown timezone", slog.String("tz", tz))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown timezone", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	next, err := s.remindersService.NextReminder(ctx, uid, s.now().In(loc))
	if err != nil {
		writeServiceError(w, logger, "next reminder", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, NextReminderResponse{
		NextReminder: next,
		Timezone:     loc.String(),
	})
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/pkg/httputil"
	"github.com/limbo/fitrack/pkg/progress"
	"github.com/limbo/fitrack/pkg/reminder"
)

type errorMapping struct {
	err         error
	code        int
	message     string
	withDetails bool
}

// Checked in order, first match wins.
var serviceErrors = []errorMapping{
	{errorvalues.ErrValidation, http.StatusBadRequest, "invalid request data", true},
	{errorvalues.ErrUserExists, http.StatusConflict, "user with such name already exists", false},
	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user doesn't exist", false},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden, "invalid username or password", false},
	{errorvalues.ErrGoalNotFound, http.StatusNotFound, "goal doesn't exist", false},
	{errorvalues.ErrWrongOwner, http.StatusNotFound, "goal doesn't exist", false},
	{errorvalues.ErrActiveGoalExists, http.StatusConflict, "user already has an active goal", false},
	{errorvalues.ErrGoalNotActive, http.StatusConflict, "goal is not active", false},
	{errorvalues.ErrDeadlineTooSoon, http.StatusUnprocessableEntity, "invalid deadline", true},
	{errorvalues.ErrDeadlineRequired, http.StatusUnprocessableEntity, "invalid deadline", true},
	{errorvalues.ErrGoalInconsistent, http.StatusUnprocessableEntity, "inconsistent goal", true},
	{errorvalues.ErrMeasurementNotFound, http.StatusNotFound, "no measurements recorded", false},
	{errorvalues.ErrMeasurementInFuture, http.StatusUnprocessableEntity, "invalid measurement", true},
	{errorvalues.ErrNoHeight, http.StatusUnprocessableEntity, "nothing to assess", true},
	{progress.ErrImplausibleBody, http.StatusUnprocessableEntity, "implausible body values", true},
	{progress.ErrUnknownSex, http.StatusBadRequest, "invalid sex parameter", true},
	{errorvalues.ErrPermissionDenied, http.StatusForbidden, "notification permissions required", true},
	{errorvalues.ErrReminderInactive, http.StatusConflict, "reminder is not active", false},
	{reminder.ErrUnknownCadence, http.StatusUnprocessableEntity, "invalid reminder", true},
	{reminder.ErrInvalidTime, http.StatusUnprocessableEntity, "invalid reminder", true},
}

// writeServiceError logs err under op and writes the matching status.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			logger.Error(op+" error: "+m.message, slog.String("error", err.Error()))
			var details error
			if m.withDetails {
				details = err
			}
			httputil.WriteErrorResponse(w, m.code, m.message, details)
			return
		}
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
}

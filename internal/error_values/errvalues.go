package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrGoalNotFound     = errors.New("goal doesn't exist")
	ErrOwnerNotFound    = errors.New("owner of the record doesn't exist")
	ErrWrongOwner       = errors.New("record belongs to another user")
	ErrActiveGoalExists = errors.New("user already has an active goal")
	ErrDeadlineTooSoon  = errors.New("deadline must be at least one day ahead")
	ErrDeadlineRequired = errors.New("goal deadline elapsed, new deadline required")
	ErrGoalInconsistent = errors.New("target weight contradicts goal objective")
	ErrGoalNotActive    = errors.New("goal is not active")

	ErrMeasurementNotFound = errors.New("no measurements recorded")
	ErrMeasurementInFuture = errors.New("measurement date is in the future")
	ErrNoHeight            = errors.New("measurement has no height")

	ErrPermissionDenied = errors.New("notification permissions not granted")
	ErrReminderInactive = errors.New("reminder is not active")
)

package reminder

import (
	"errors"
	"fmt"
	"time"
)

type Cadence string

const (
	Daily    Cadence = "daily"
	Weekly   Cadence = "weekly"
	Biweekly Cadence = "biweekly"
	Monthly  Cadence = "monthly"
)

var (
	ErrUnknownCadence = errors.New("unknown reminder cadence")
	ErrInvalidTime    = errors.New("reminder time out of range")
)

func ParseCadence(s string) (Cadence, error) {
	c := Cadence(s)
	if !c.Valid() {
		return "", ErrUnknownCadence
	}
	return c, nil
}

func (c Cadence) Valid() bool {
	switch c {
	case Daily, Weekly, Biweekly, Monthly:
		return true
	}
	return false
}

// step advances a calendar date by one cadence unit. Monthly steps clamp
// to the last day of the target month.
func (c Cadence) step(y int, m time.Month, d int) (int, time.Month, int) {
	days := 1
	switch c {
	case Weekly:
		days = 7
	case Biweekly:
		days = 15
	case Monthly:
		first := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(y, m+2, 0, 0, 0, 0, 0, time.UTC).Day()
		return first.Year(), first.Month(), min(d, last)
	}
	return time.Date(y, m, d+days, 0, 0, 0, 0, time.UTC).Date()
}

func validate(c Cadence, hour, minute int) error {
	if !c.Valid() {
		return ErrUnknownCadence
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ErrInvalidTime
	}
	return nil
}

// NextOccurrence returns the first hour:minute instant strictly after now,
// in now's location.
func NextOccurrence(c Cadence, hour, minute int, now time.Time) (time.Time, error) {
	if err := validate(c, hour, minute); err != nil {
		return time.Time{}, err
	}
	// The instant is rebuilt from hour:minute on every step so a DST gap
	// on one day does not shift later occurrences.
	y, m, d := now.Date()
	next := time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	for i := 0; i < 2 && !next.After(now); i++ {
		y, m, d = c.step(y, m, d)
		next = time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	}
	return next, nil
}

// Schedule describes a repeating trigger for an alarm dispatcher.
type Schedule struct {
	Cadence  Cadence       `json:"cadence"`
	Interval time.Duration `json:"interval"`
	// Monthly schedules step by calendar month, Interval is nominal.
	CalendarMonths int    `json:"calendar_months,omitempty"`
	Hour           int    `json:"hour"`
	Minute         int    `json:"minute"`
	Anchor         string `json:"anchor"`
}

func DescribeRepeatingSchedule(c Cadence, hour, minute int) (Schedule, error) {
	if err := validate(c, hour, minute); err != nil {
		return Schedule{}, err
	}
	s := Schedule{
		Cadence: c,
		Hour:    hour,
		Minute:  minute,
		Anchor:  fmt.Sprintf("%02d:%02d", hour, minute),
	}
	switch c {
	case Daily:
		s.Interval = 24 * time.Hour
	case Weekly:
		s.Interval = 7 * 24 * time.Hour
	case Biweekly:
		s.Interval = 15 * 24 * time.Hour
	case Monthly:
		s.Interval = 30 * 24 * time.Hour
		s.CalendarMonths = 1
	}
	return s, nil
}

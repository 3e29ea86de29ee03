package progress

import (
	"math"
	"time"

	"github.com/limbo/fitrack/pkg/entity"
)

// DefaultTolerance is the completion band around the target weight, in kg.
const DefaultTolerance = 0.5

const day = 24 * time.Hour

type Snapshot struct {
	CurrentWeight float64 `json:"current_weight"`
	Percent       float64 `json:"percent"`
	Remaining     float64 `json:"remaining"`
	DaysRemaining int     `json:"days_remaining"`
	InProgress    bool    `json:"in_progress"`
}

// Engine computes goal progress. Zero value uses DefaultTolerance.
type Engine struct {
	Tolerance float64
}

func NewEngine(tolerance float64) *Engine {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Engine{Tolerance: tolerance}
}

// CompletionBand is the tolerance in effect.
func (e *Engine) CompletionBand() float64 {
	if e == nil || e.Tolerance <= 0 {
		return DefaultTolerance
	}
	return e.Tolerance
}

// ComputeProgress returns nil when there is no current weight to compare with.
func (e *Engine) ComputeProgress(goal *entity.Goal, currentWeight *float64, now time.Time) *Snapshot {
	if goal == nil || currentWeight == nil {
		return nil
	}
	tol := e.CompletionBand()
	s, t, c := goal.StartWeight, goal.TargetWeight, *currentWeight
	remaining := t - c

	var percent float64
	if s != t {
		percent = math.Abs(s-c) / math.Abs(s-t) * 100
	} else {
		dist := math.Abs(c - t)
		if dist <= tol {
			percent = 100
		} else {
			percent = 100 * tol / dist
		}
	}

	return &Snapshot{
		CurrentWeight: c,
		Percent:       clamp(percent, 0, 100),
		Remaining:     remaining,
		DaysRemaining: DaysRemaining(goal.Deadline, now),
		InProgress:    math.Abs(remaining) > tol,
	}
}

// DaysRemaining counts started days until deadline, 0 once it has passed.
func DaysRemaining(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(float64(left) / float64(day)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

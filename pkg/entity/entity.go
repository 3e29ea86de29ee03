package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Objective string

const (
	ObjectiveReduce   Objective = "reduce"
	ObjectiveGain     Objective = "gain"
	ObjectiveMaintain Objective = "maintain"
)

type Goal struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	Objective    Objective `json:"objective"`
	StartWeight  float64   `json:"start_weight"`
	TargetWeight float64   `json:"target_weight"`
	StartedAt    time.Time `json:"started_at"`
	Deadline     time.Time `json:"deadline"`
	Active       bool      `json:"active"`
	Fulfilled    bool      `json:"fulfilled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Measurement struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	WeightKg   float64   `json:"weight_kg"`
	HeightCm   *float64  `json:"height_cm,omitempty"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
	TakenAt    time.Time `json:"taken_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReminderConfig struct {
	UserID    uuid.UUID `json:"uid"`
	Cadence   string    `json:"cadence"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

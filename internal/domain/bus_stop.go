package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// StopStatus - состояние остановки
type StopStatus string

const (
	StopStatusActive   StopStatus = "ACTIVE"
	StopStatusInactive StopStatus = "INACTIVE"
	StopStatusPlanned  StopStatus = "PLANNED"
)

func (s StopStatus) IsValid() bool {
	switch s {
	case StopStatusActive, StopStatusInactive, StopStatusPlanned:
		return true
	}
	return false
}

// BusStop - остановка, точка в SRID 4326
type BusStop struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description,omitempty" db:"description"`
	Status      StopStatus `json:"status" db:"status"`
	HasShelter  bool       `json:"has_shelter" db:"has_shelter"`
	Geometry    orb.Point  `json:"-" db:"-"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// LineStatus - состояние линии
type LineStatus string

const (
	LineStatusActive    LineStatus = "ACTIVE"
	LineStatusSuspended LineStatus = "SUSPENDED"
	LineStatusPlanned   LineStatus = "PLANNED"
)

func (s LineStatus) IsValid() bool {
	switch s {
	case LineStatusActive, LineStatusSuspended, LineStatusPlanned:
		return true
	}
	return false
}

// BusLine - автобусная линия. Компания хранится ссылкой (company_id), не копией.
type BusLine struct {
	ID          int64          `json:"id" db:"id"`
	Number      string         `json:"number" db:"number"`
	Description *string        `json:"description,omitempty" db:"description"`
	Status      LineStatus     `json:"status" db:"status"`
	Origin      string         `json:"origin" db:"origin"`
	Destination string         `json:"destination" db:"destination"`
	Schedule    TimeOfDay      `json:"schedule" db:"schedule"`
	Geometry    orb.LineString `json:"-" db:"-"`
	CompanyID   int64          `json:"company_id" db:"company_id"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

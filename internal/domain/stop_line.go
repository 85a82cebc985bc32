package domain

import "time"

// StopLine - плановое прохождение линии через остановку в определённое время.
// Тройка (BusStopID, BusLineID, EstimatedTime) уникальна.
type StopLine struct {
	ID            int64     `json:"id" db:"id"`
	BusStopID     int64     `json:"bus_stop_id" db:"bus_stop_id"`
	BusLineID     int64     `json:"bus_line_id" db:"bus_line_id"`
	EstimatedTime TimeOfDay `json:"estimated_time" db:"estimated_time"`
	IsEnabled     bool      `json:"is_enabled" db:"is_enabled"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

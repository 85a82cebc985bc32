package domain

import "time"

// BusLineSchedule - один конкретный рейс. Связи с BusLine нет.
type BusLineSchedule struct {
	ID            int64     `json:"id" db:"id"`
	OperatingDay  Date      `json:"operating_day" db:"operating_day"`
	DepartureTime TimeOfDay `json:"departure_time" db:"departure_time"`
	ArrivalTime   TimeOfDay `json:"arrival_time" db:"arrival_time"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

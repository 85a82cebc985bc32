package dto

import "github.com/transit-network/internal/domain"

type BusLineScheduleRequest struct {
	OperatingDay  *domain.Date      `json:"operatingDay" validate:"required" swaggertype:"string" example:"2024-03-18"`
	DepartureTime *domain.TimeOfDay `json:"departureTime" validate:"required" swaggertype:"string" example:"07:30:00"`
	ArrivalTime   *domain.TimeOfDay `json:"arrivalTime" validate:"required" swaggertype:"string" example:"08:45:00"`
}

type BusLineScheduleResponse struct {
	ID            int64            `json:"id"`
	OperatingDay  domain.Date      `json:"operatingDay" swaggertype:"string" example:"2024-03-18"`
	DepartureTime domain.TimeOfDay `json:"departureTime" swaggertype:"string" example:"07:30:00"`
	ArrivalTime   domain.TimeOfDay `json:"arrivalTime" swaggertype:"string" example:"08:45:00"`
}

func NewBusLineScheduleResponse(s *domain.BusLineSchedule) BusLineScheduleResponse {
	return BusLineScheduleResponse{
		ID:            s.ID,
		OperatingDay:  s.OperatingDay,
		DepartureTime: s.DepartureTime,
		ArrivalTime:   s.ArrivalTime,
	}
}

func NewBusLineScheduleResponses(schedules []*domain.BusLineSchedule) []BusLineScheduleResponse {
	result := make([]BusLineScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, NewBusLineScheduleResponse(s))
	}
	return result
}

package dto

import "github.com/transit-network/internal/domain"

// StopLineRequest - создание связи остановка-линия. IsEnabled по умолчанию false.
type StopLineRequest struct {
	StopID        int64             `json:"stopId" validate:"required,gt=0"`
	LineID        int64             `json:"lineId" validate:"required,gt=0"`
	EstimatedTime *domain.TimeOfDay `json:"estimatedTime" validate:"required" swaggertype:"string" example:"08:15:00"`
	IsEnabled     *bool             `json:"isEnabled,omitempty"`
}

// StopLineUpdateRequest - меняются только время и флаг
type StopLineUpdateRequest struct {
	EstimatedTime *domain.TimeOfDay `json:"estimatedTime" validate:"required" swaggertype:"string" example:"08:15:00"`
	IsEnabled     bool              `json:"isEnabled"`
}

type StopLineResponse struct {
	ID            int64            `json:"id"`
	StopID        int64            `json:"stopId"`
	LineID        int64            `json:"lineId"`
	EstimatedTime domain.TimeOfDay `json:"estimatedTime" swaggertype:"string" example:"08:15:00"`
	IsEnabled     bool             `json:"isEnabled"`
}

func NewStopLineResponse(sl *domain.StopLine) StopLineResponse {
	return StopLineResponse{
		ID:            sl.ID,
		StopID:        sl.BusStopID,
		LineID:        sl.BusLineID,
		EstimatedTime: sl.EstimatedTime,
		IsEnabled:     sl.IsEnabled,
	}
}

func NewStopLineResponses(stopLines []*domain.StopLine) []StopLineResponse {
	result := make([]StopLineResponse, 0, len(stopLines))
	for _, sl := range stopLines {
		result = append(result, NewStopLineResponse(sl))
	}
	return result
}

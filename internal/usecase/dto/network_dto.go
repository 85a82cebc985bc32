package dto

import "github.com/transit-network/internal/domain"

// StopBoardResponse - табло остановки: связи в окне времени вместе с данными линии
type StopBoardResponse struct {
	Stop    BusStopResponse  `json:"stop"`
	From    domain.TimeOfDay `json:"from" swaggertype:"string" example:"08:00:00"`
	To      domain.TimeOfDay `json:"to" swaggertype:"string" example:"09:00:00"`
	Entries []StopBoardEntry `json:"entries"`
}

type StopBoardEntry struct {
	StopLineID    int64            `json:"stopLineId"`
	LineID        int64            `json:"lineId"`
	LineNumber    string           `json:"lineNumber"`
	Origin        string           `json:"origin"`
	Destination   string           `json:"destination"`
	EstimatedTime domain.TimeOfDay `json:"estimatedTime" swaggertype:"string" example:"08:15:00"`
	IsEnabled     bool             `json:"isEnabled"`
}

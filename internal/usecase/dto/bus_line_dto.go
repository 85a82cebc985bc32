package dto

import (
	"encoding/json"

	orbjson "github.com/paulmach/orb/geojson"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/pkg/geojson"
)

// BusLineRequest - создание и полная замена линии.
// Geometry - GeoJSON LineString, минимум две точки.
type BusLineRequest struct {
	Number      string            `json:"number" validate:"required,notblank,max=50"`
	Description *string           `json:"description,omitempty"`
	Status      domain.LineStatus `json:"status" validate:"required,oneof=ACTIVE SUSPENDED PLANNED"`
	Origin      string            `json:"origin" validate:"max=255"`
	Destination string            `json:"destination" validate:"max=255"`
	Schedule    *domain.TimeOfDay `json:"schedule" validate:"required" swaggertype:"string" example:"06:30:00"`
	Geometry    json.RawMessage   `json:"geometry" validate:"required" swaggertype:"object"`
	CompanyID   int64             `json:"companyId" validate:"required,gt=0"`
}

type BusLineResponse struct {
	ID          int64             `json:"id"`
	Number      string            `json:"number"`
	Description *string           `json:"description"`
	Status      domain.LineStatus `json:"status"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Schedule    domain.TimeOfDay  `json:"schedule" swaggertype:"string" example:"06:30:00"`
	Geometry    *orbjson.Geometry `json:"geometry" swaggertype:"object"`
	CompanyID   int64             `json:"companyId"`
}

func NewBusLineResponse(l *domain.BusLine) BusLineResponse {
	return BusLineResponse{
		ID:          l.ID,
		Number:      l.Number,
		Description: l.Description,
		Status:      l.Status,
		Origin:      l.Origin,
		Destination: l.Destination,
		Schedule:    l.Schedule,
		Geometry:    geojson.NewGeometry(l.Geometry),
		CompanyID:   l.CompanyID,
	}
}

func NewBusLineResponses(lines []*domain.BusLine) []BusLineResponse {
	result := make([]BusLineResponse, 0, len(lines))
	for _, l := range lines {
		result = append(result, NewBusLineResponse(l))
	}
	return result
}

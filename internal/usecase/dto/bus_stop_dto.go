package dto

import (
	"encoding/json"

	orbjson "github.com/paulmach/orb/geojson"

	"github.com/transit-network/internal/domain"
	"github.com/transit-network/internal/pkg/geojson"
)

// BusStopRequest - создание и полная замена остановки.
// Geometry - GeoJSON Point.
type BusStopRequest struct {
	Name        string            `json:"name" validate:"required,notblank,max=255"`
	Description *string           `json:"description,omitempty"`
	Status      domain.StopStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE PLANNED"`
	HasShelter  bool              `json:"hasShelter"`
	Geometry    json.RawMessage   `json:"geometry" validate:"required" swaggertype:"object"`
}

type BusStopResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Status      domain.StopStatus `json:"status"`
	HasShelter  bool              `json:"hasShelter"`
	Geometry    *orbjson.Geometry `json:"geometry" swaggertype:"object"`
}

// NearbyStopsRequest - поиск остановок в радиусе (метры)
type NearbyStopsRequest struct {
	Lat    float64 `query:"lat" json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `query:"lon" json:"lon" validate:"min=-180,max=180"`
	Radius float64 `query:"radius" json:"radius" validate:"required,min=1,max=50000"`
}

func NewBusStopResponse(s *domain.BusStop) BusStopResponse {
	return BusStopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Status:      s.Status,
		HasShelter:  s.HasShelter,
		Geometry:    geojson.NewGeometry(s.Geometry),
	}
}

func NewBusStopResponses(stops []*domain.BusStop) []BusStopResponse {
	result := make([]BusStopResponse, 0, len(stops))
	for _, s := range stops {
		result = append(result, NewBusStopResponse(s))
	}
	return result
}

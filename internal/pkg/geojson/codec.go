// Package geojson converts GeoJSON geometry objects into orb geometries and back.
//
// All geometries are WGS84 (SRID 4326); nothing is reprojected. Parsing is pure and
// every failure wraps ErrInvalidGeometry.
package geojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"
)

// SRID of every stored geometry
const SRID = 4326

// Kind - ожидаемый тип геометрии
type Kind string

const (
	KindPoint      Kind = "Point"
	KindLineString Kind = "LineString"
	KindPolygon    Kind = "Polygon"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    json.RawMessage `json:"geometry"`
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}

// Parse разбирает GeoJSON геометрию и проверяет, что её тип совпадает с kind.
// Feature с вложенной геометрией тоже принимается.
func Parse(raw []byte, kind Kind) (orb.Geometry, error) {
	coords, err := coordinatesOf(raw, kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindPoint:
		var pos []float64
		if err := json.Unmarshal(coords, &pos); err != nil {
			return nil, invalid("point coordinates must be an array of numbers")
		}
		return toPoint(pos)

	case KindLineString:
		var positions [][]float64
		if err := json.Unmarshal(coords, &positions); err != nil {
			return nil, invalid("line string coordinates must be an array of positions")
		}
		return toLineString(positions)

	case KindPolygon:
		var rings [][][]float64
		if err := json.Unmarshal(coords, &rings); err != nil {
			return nil, invalid("polygon coordinates must be an array of linear rings")
		}
		return toPolygon(rings)
	}

	return nil, invalid("unsupported geometry kind %q", kind)
}

func ParsePoint(raw []byte) (orb.Point, error) {
	g, err := Parse(raw, KindPoint)
	if err != nil {
		return orb.Point{}, err
	}
	return g.(orb.Point), nil
}

func ParseLineString(raw []byte) (orb.LineString, error) {
	g, err := Parse(raw, KindLineString)
	if err != nil {
		return nil, err
	}
	return g.(orb.LineString), nil
}

func ParsePolygon(raw []byte) (orb.Polygon, error) {
	g, err := Parse(raw, KindPolygon)
	if err != nil {
		return nil, err
	}
	return g.(orb.Polygon), nil
}

// Marshal возвращает голый GeoJSON объект геометрии
func Marshal(g orb.Geometry) ([]byte, error) {
	if g == nil {
		return nil, invalid("geometry is nil")
	}
	return orbjson.NewGeometry(g).MarshalJSON()
}

// NewGeometry оборачивает orb геометрию для сериализации в ответах
func NewGeometry(g orb.Geometry) *orbjson.Geometry {
	if g == nil {
		return nil
	}
	return orbjson.NewGeometry(g)
}

func coordinatesOf(raw []byte, kind Kind) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, invalid("geometry is empty")
	}

	var g rawGeometry
	if err := json.Unmarshal(trimmed, &g); err != nil {
		return nil, invalid("malformed GeoJSON: %v", err)
	}

	if g.Type == "Feature" {
		if len(g.Geometry) == 0 {
			return nil, invalid("feature has no geometry")
		}
		return coordinatesOf(g.Geometry, kind)
	}

	if g.Type == "" {
		return nil, invalid("missing geometry type")
	}
	if g.Type != string(kind) {
		return nil, invalid("expected %s geometry, got %s", kind, g.Type)
	}
	if len(g.Coordinates) == 0 || bytes.Equal(g.Coordinates, []byte("null")) {
		return nil, invalid("missing coordinates")
	}

	return g.Coordinates, nil
}

func toPoint(pos []float64) (orb.Point, error) {
	if len(pos) < 2 || len(pos) > 3 {
		return orb.Point{}, invalid("position must have 2 or 3 ordinates, got %d", len(pos))
	}

	lon, lat := pos[0], pos[1]
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return orb.Point{}, invalid("ordinates must be finite numbers")
	}
	if lon < -180 || lon > 180 {
		return orb.Point{}, invalid("longitude %v out of range [-180, 180]", lon)
	}
	if lat < -90 || lat > 90 {
		return orb.Point{}, invalid("latitude %v out of range [-90, 90]", lat)
	}

	return orb.Point{lon, lat}, nil
}

func toLineString(positions [][]float64) (orb.LineString, error) {
	if len(positions) < 2 {
		return nil, invalid("line string needs at least 2 positions, got %d", len(positions))
	}

	ls := make(orb.LineString, 0, len(positions))
	for _, pos := range positions {
		p, err := toPoint(pos)
		if err != nil {
			return nil, err
		}
		ls = append(ls, p)
	}
	return ls, nil
}

func toPolygon(rings [][][]float64) (orb.Polygon, error) {
	if len(rings) == 0 {
		return nil, invalid("polygon needs at least one ring")
	}

	poly := make(orb.Polygon, 0, len(rings))
	for i, positions := range rings {
		if len(positions) < 4 {
			return nil, invalid("ring %d needs at least 4 positions, got %d", i, len(positions))
		}

		ring := make(orb.Ring, 0, len(positions))
		for _, pos := range positions {
			p, err := toPoint(pos)
			if err != nil {
				return nil, err
			}
			ring = append(ring, p)
		}
		if !ring.Closed() {
			return nil, invalid("ring %d is not closed", i)
		}
		poly = append(poly, ring)
	}
	return poly, nil
}

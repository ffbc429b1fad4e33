package models

import (
	"errors"

	"github.com/golang/geo/s2"
)

var ErrInvalidPosition = errors.New("invalid position")

// Position is a device location in degrees.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewPosition validates lat/lng; latitude must be within ±90 and longitude
// within ±180.
func NewPosition(lat, lng float64) (Position, error) {
	if !s2.LatLngFromDegrees(lat, lng).IsValid() {
		return Position{}, ErrInvalidPosition
	}
	return Position{Latitude: lat, Longitude: lng}, nil
}

func (p Position) String() string {
	return s2.LatLngFromDegrees(p.Latitude, p.Longitude).String()
}

// Draft is the report being composed: captured photo paths plus the last
// known position. It lives only in memory.
type Draft struct {
	Photos   []string
	Position *Position
}

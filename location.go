package suntime

import (
	"fmt"
)

// Location is a point on the earth. Name is only used to identify the
// location in logs and errors.
type Location struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`   // degrees north
	Longitude float64 `json:"longitude" yaml:"longitude"` // degrees east
}

func NewLocation(name string, latitude, longitude float64) Location {
	return Location{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%gN, %gE)", l.Name, l.Latitude, l.Longitude)
}

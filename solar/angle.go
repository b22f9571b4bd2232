package solar

import (
	"math"

	"github.com/soniakeys/unit"
)

// The series below is written in degrees. These helpers are the only
// place degrees are turned into radians for the math package and back.

func sin(deg float64) float64 { return math.Sin(unit.AngleFromDeg(deg).Rad()) }
func cos(deg float64) float64 { return math.Cos(unit.AngleFromDeg(deg).Rad()) }
func tan(deg float64) float64 { return math.Tan(unit.AngleFromDeg(deg).Rad()) }

func asin(x float64) float64 { return degrees(math.Asin(x)) }
func acos(x float64) float64 { return degrees(math.Acos(x)) }

// degrees converts radians to degrees.
func degrees(rad float64) float64 { return unit.Angle(rad).Deg() }

package solar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// zenith is the sun's zenith angle at sunrise and sunset: 90° plus
// atmospheric refraction and the solar disk radius.
const zenith = 90.833

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("sun does not cross the horizon")

	// ErrLongitude is returned, wrapped, for a NaN or infinite longitude.
	ErrLongitude = errors.New("longitude is not finite")
)

// DomainError reports that the sunrise hour angle is undefined because
// the sun stays above (polar day) or below (polar night) the horizon for
// the whole day.
type DomainError struct {
	Latitude    float64
	Declination float64
	Cosine      float64 // the out of range arccosine argument
}

func (e *DomainError) Error() string {
	kind := "undefined hour angle"
	switch {
	case e.PolarDay():
		kind = "polar day"
	case e.PolarNight():
		kind = "polar night"
	}
	return fmt.Sprintf("%s at latitude %g (declination %.4f, cos %.4f): %s", kind, e.Latitude, e.Declination, e.Cosine, ErrDomain)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// PolarDay is true when the sun never sets.
func (e *DomainError) PolarDay() bool {
	return e.Cosine < -1
}

// PolarNight is true when the sun never rises.
func (e *DomainError) PolarNight() bool {
	return e.Cosine > 1
}

// HourAngle returns the sunrise hour angle in degrees for a latitude in
// degrees north and the sun's declination. The arccosine argument is
// checked before use; outside [-1, 1] (or NaN) a *DomainError is
// returned instead of a NaN angle.
func HourAngle(latitude, declination float64) (float64, error) {
	x := cos(zenith)/(cos(latitude)*cos(declination)) - tan(latitude)*tan(declination)
	if !(x >= -1 && x <= 1) {
		return math.NaN(), &DomainError{
			Latitude:    latitude,
			Declination: declination,
			Cosine:      x,
		}
	}
	return acos(x), nil
}

// Times holds sunrise, solar noon and sunset as Julian dates in UT.
type Times struct {
	Sunrise float64
	Noon    float64
	Sunset  float64
}

// Compute returns the Julian dates of sunrise, solar noon and sunset on
// the given UTC date at latitude degrees north and longitude degrees east.
// Either all three are returned or an error.
func Compute(year int, month time.Month, day int, latitude, longitude float64) (Times, error) {
	jd := JulianDay(year, month, day)
	eph := NewEphemeris(jd)

	ha, err := HourAngle(latitude, eph.Declination)
	if err != nil {
		return Times{}, err
	}

	noon := eph.SolarNoonFraction(longitude)
	if math.IsNaN(noon) || math.IsInf(noon, 0) {
		return Times{}, fmt.Errorf("solar noon at longitude %g: %w", longitude, ErrLongitude)
	}

	return Times{
		Sunrise: jd + noon - ha*4/1440,
		Noon:    jd + noon,
		Sunset:  jd + noon + ha*4/1440,
	}, nil
}

// DateTimes converts all three Julian dates with DateTime.
func (t Times) DateTimes() (sunrise, noon, sunset time.Time) {
	return DateTime(t.Sunrise), DateTime(t.Noon), DateTime(t.Sunset)
}

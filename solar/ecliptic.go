package solar

import (
	"math"
)

// Quantities below follow the NOAA solar calculator. Every function
// takes t, the Julian century from JulianCentury, and works in degrees.
//
// https://gml.noaa.gov/grad/solcalc/calcdetails.html

// GeometricMeanLongitude returns the sun's mean longitude, referred to
// the mean equinox of date, in [0, 360).
func GeometricMeanLongitude(t float64) float64 {
	l0 := math.Mod(280.46646+t*(36000.76983+t*0.0003032), 360)
	if l0 < 0 {
		l0 += 360
	}
	return l0
}

// GeometricMeanAnomaly returns the fraction of the sun's orbital period
// elapsed since perihelion, expressed as an angle. It is not reduced.
func GeometricMeanAnomaly(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

// Eccentricity returns the eccentricity of earth's orbit.
func Eccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// EquationOfTheCenter calculates the angular difference between the
// position of the actual sun (with an elliptical orbit) and the mean
// sun (with a circular orbit), given the mean anomaly.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfTheCenter(t, meanAnomaly float64) float64 {
	firstOrder := sin(meanAnomaly) * (1.914602 - t*(0.004817+0.000014*t))
	secondOrder := sin(2*meanAnomaly) * (0.019993 - 0.000101*t)
	thirdOrder := sin(3*meanAnomaly) * 0.000289

	return firstOrder + secondOrder + thirdOrder
}

// ascendingNode is the longitude of the moon's ascending node, which
// drives the nutation terms.
func ascendingNode(t float64) float64 {
	return 125.04 - 1934.136*t
}

// ApparentLongitude corrects the sun's true longitude for nutation and
// aberration.
func ApparentLongitude(t, trueLongitude float64) float64 {
	return trueLongitude - 0.00569 - 0.00478*sin(ascendingNode(t))
}

// MeanObliquity returns the mean obliquity of the ecliptic.
func MeanObliquity(t float64) float64 {
	seconds := 21.448 - t*(46.815+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

// ObliquityCorrection applies nutation to the mean obliquity.
func ObliquityCorrection(t, meanObliquity float64) float64 {
	return meanObliquity + 0.00256*cos(ascendingNode(t))
}

// Declination returns the sun's declination.
func Declination(obliquity, apparentLongitude float64) float64 {
	return asin(sin(obliquity) * sin(apparentLongitude))
}

// EquationOfTime returns apparent minus mean solar time, in minutes.
func EquationOfTime(obliquity, meanLongitude, meanAnomaly, eccentricity float64) float64 {
	y := tan(obliquity / 2)
	y *= y

	l0, m, e := meanLongitude, meanAnomaly, eccentricity
	eq := y*sin(2*l0) -
		2*e*sin(m) +
		4*e*y*sin(m)*cos(2*l0) -
		0.5*y*y*sin(4*l0) -
		1.25*e*e*sin(2*m)

	return 4 * degrees(eq)
}

// Ephemeris holds the intermediate solar quantities for one Julian day.
type Ephemeris struct {
	JulianDay         float64
	Century           float64
	MeanLongitude     float64
	MeanAnomaly       float64
	Eccentricity      float64
	EquationOfCenter  float64
	TrueLongitude     float64
	ApparentLongitude float64
	MeanObliquity     float64
	Obliquity         float64
	Declination       float64
	EquationOfTime    float64 // minutes
}

// NewEphemeris evaluates the series for the Julian day jd. Each
// quantity depends on the ones before it.
func NewEphemeris(jd float64) Ephemeris {
	eph := Ephemeris{JulianDay: jd}

	eph.Century = JulianCentury(jd)
	t := eph.Century

	eph.MeanLongitude = GeometricMeanLongitude(t)
	eph.MeanAnomaly = GeometricMeanAnomaly(t)
	eph.Eccentricity = Eccentricity(t)
	eph.EquationOfCenter = EquationOfTheCenter(t, eph.MeanAnomaly)
	eph.TrueLongitude = eph.MeanLongitude + eph.EquationOfCenter
	eph.ApparentLongitude = ApparentLongitude(t, eph.TrueLongitude)
	eph.MeanObliquity = MeanObliquity(t)
	eph.Obliquity = ObliquityCorrection(t, eph.MeanObliquity)
	eph.Declination = Declination(eph.Obliquity, eph.ApparentLongitude)
	eph.EquationOfTime = EquationOfTime(eph.Obliquity, eph.MeanLongitude, eph.MeanAnomaly, eph.Eccentricity)

	return eph
}

// SolarNoonFraction returns local apparent noon as a fraction of the
// UTC day, for a longitude in degrees east.
func (e Ephemeris) SolarNoonFraction(longitudeEast float64) float64 {
	return (720 - 4*longitudeEast - e.EquationOfTime) / 1440
}

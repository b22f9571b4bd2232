package solar

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEphemeris(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantDecl float64
		wantEoT  float64 // minutes
	}{
		{"J2000", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), -23.0712, -3.0641},
		{"march equinox", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), -0.0506, -7.4390},
		{"june solstice", time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC), 23.4386, -1.8162},
		{"before J2000", time.Date(1990, time.May, 5, 0, 0, 0, 0, time.UTC), 16.1174, 3.2675},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eph := NewEphemeris(JulianDay(tt.date.Year(), tt.date.Month(), tt.date.Day()))

			assert.InDelta(t, tt.wantDecl, eph.Declination, 1e-3)
			assert.InDelta(t, tt.wantEoT, eph.EquationOfTime, 1e-3)

			assert.GreaterOrEqual(t, eph.MeanLongitude, 0.0)
			assert.Less(t, eph.MeanLongitude, 360.0)
			assert.InDelta(t, 0.0167, eph.Eccentricity, 1e-4)
			assert.InDelta(t, 23.44, eph.Obliquity, 0.01)
			assert.Equal(t, eph.MeanLongitude+eph.EquationOfCenter, eph.TrueLongitude)
		})
	}
}

func TestEphemerisSteps(t *testing.T) {
	// at J2000.0 every term polynomial collapses to its constant
	assert.InDelta(t, 280.46646, GeometricMeanLongitude(0), 1e-9)
	assert.InDelta(t, 357.52911, GeometricMeanAnomaly(0), 1e-9)
	assert.InDelta(t, 0.016708634, Eccentricity(0), 1e-12)
	assert.InDelta(t, 23+(26+21.448/60)/60, MeanObliquity(0), 1e-12)

	// one Julian century later the mean longitude has wrapped 100 times
	assert.InDelta(t, math.Mod(280.46646+36000.76983+0.0003032, 360), GeometricMeanLongitude(1), 1e-9)
}

func TestSolarNoonFraction(t *testing.T) {
	eph := Ephemeris{EquationOfTime: 0}
	assert.Equal(t, 0.5, eph.SolarNoonFraction(0))
	assert.Equal(t, 0.75, eph.SolarNoonFraction(-90))
	assert.Equal(t, 0.25, eph.SolarNoonFraction(90))

	eph.EquationOfTime = 14.4
	assert.InDelta(t, 0.49, eph.SolarNoonFraction(0), 1e-12)
}

func TestHourAngle(t *testing.T) {
	ha, err := HourAngle(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, zenith, ha, 1e-9)

	// longer days toward the summer pole
	north, err := HourAngle(45, 20)
	require.NoError(t, err)
	south, err := HourAngle(-45, 20)
	require.NoError(t, err)
	assert.Greater(t, north, 90.0)
	assert.Less(t, south, 90.0)
}

func TestHourAngleDomainError(t *testing.T) {
	tests := []struct {
		name        string
		latitude    float64
		declination float64
		polarDay    bool
		polarNight  bool
	}{
		{"arctic winter", 70, -23.44, false, true},
		{"arctic summer", 70, 23.44, true, false},
		{"antarctic winter", -70, 23.44, false, true},
		{"antarctic summer", -70, -23.44, true, false},
		{"north pole", 90, 10, true, false},
		{"nan latitude", math.NaN(), 10, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ha, err := HourAngle(tt.latitude, tt.declination)
			require.Error(t, err)
			assert.True(t, math.IsNaN(ha))
			assert.ErrorIs(t, err, ErrDomain)

			var domainErr *DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.polarDay, domainErr.PolarDay())
			assert.Equal(t, tt.polarNight, domainErr.PolarNight())
		})
	}
}

func TestCompute(t *testing.T) {
	times, err := Compute(2000, time.January, 1, 0, 0)
	require.NoError(t, err)

	sunrise, noon, sunset := times.DateTimes()
	assert.WithinDuration(t, time.Date(2000, time.January, 1, 5, 59, 26, 0, time.UTC), sunrise, time.Second)
	assert.WithinDuration(t, time.Date(2000, time.January, 1, 12, 3, 3, 0, time.UTC), noon, time.Second)
	assert.WithinDuration(t, time.Date(2000, time.January, 1, 18, 6, 41, 0, time.UTC), sunset, time.Second)

	assert.Less(t, times.Sunrise, times.Noon)
	assert.Less(t, times.Noon, times.Sunset)
	assert.InDelta(t, times.Noon-times.Sunrise, times.Sunset-times.Noon, 1e-8)
}

func TestComputePolarNight(t *testing.T) {
	times, err := Compute(2024, time.December, 21, 70, 0)
	assert.Equal(t, Times{}, times)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.True(t, domainErr.PolarNight())
	assert.Equal(t, 70.0, domainErr.Latitude)
	assert.InDelta(t, -23.438, domainErr.Declination, 1e-3)
	assert.Contains(t, err.Error(), "polar night")
}

func TestComputeNonFiniteLongitude(t *testing.T) {
	for _, lon := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		times, err := Compute(2024, time.May, 1, 10, lon)
		assert.ErrorIs(t, err, ErrLongitude)
		assert.Equal(t, Times{}, times)
	}
}

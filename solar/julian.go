package solar

import (
	"math"
	"time"
)

const (
	EpochJulianDate = 2440587.5 // 1970-01-01T00:00:00Z
	J2000           = 2451545.0
	SecondsPerDay   = 86400 // not including leap seconds
	DaysPerCentury  = 36525
)

// FromTime returns the Julian date for a particular instant.
//
// Leap seconds are ignored, as they are by the time package. The
// solar series works in universal time, so this agrees with JulianDay
// at UTC midnight.
func FromTime(t time.Time) float64 {
	return float64(t.Unix())/SecondsPerDay + EpochJulianDate
}

// JulianDay returns the Julian day at midnight starting the given
// proleptic Gregorian date. January and February are counted as months
// 13 and 14 of the previous year.
//
// https://en.wikipedia.org/wiki/Julian_day#Converting_Gregorian_calendar_date_to_Julian_Day_Number
func JulianDay(year int, month time.Month, day int) float64 {
	y, m := float64(year), float64(month)
	if month <= time.February {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
}

// JulianCentury returns the number of Julian centuries since J2000.0.
func JulianCentury(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// CalendarDate returns the calendar date containing the Julian date jd.
// The day count is truncated after undoing the midnight anchor used by
// JulianDay, so any jd in [JulianDay(d), JulianDay(d)+1) maps to d.
func CalendarDate(jd float64) (int, time.Month, int) {
	j := int(math.Floor(jd + 0.5))

	f := j + 1401 + floorDiv(floorDiv(4*j+274277, 146097)*3, 4) - 38
	e := 4*f + 3
	h := 5*floorDiv(floorMod(e, 1461), 4) + 2
	day := floorDiv(floorMod(h, 153), 5) + 1
	month := floorMod(floorDiv(h, 153)+2, 12) + 1
	year := floorDiv(e, 1461) - 4716 + floorDiv(12+2-month, 12)

	return resolveDate(year, time.Month(month), day)
}

// DateTime returns the UTC time of day, to the second, for the Julian
// date jd. Sub-second remainders are truncated, not rounded.
func DateTime(jd float64) time.Time {
	year, month, day := CalendarDate(jd)

	_, frac := math.Modf(jd - 0.5)
	hours := frac * 24
	hour, hourFrac := math.Modf(hours)
	minute, minuteFrac := math.Modf(hourFrac * 60)
	second := math.Floor(minuteFrac * 60)

	return time.Date(year, month, day, int(hour), int(minute), int(second), 0, time.UTC)
}

// resolveDate returns the date unchanged when it exists. Otherwise the
// day before it, clamped into the month, is advanced by one day, so
// February 30 becomes March 1.
func resolveDate(year int, month time.Month, day int) (int, time.Month, int) {
	if day >= 1 && day <= daysIn(year, month) {
		return year, month, day
	}

	prev := day - 1
	if n := daysIn(year, month); prev > n {
		prev = n
	}
	if prev < 1 {
		prev = 1
	}
	next := time.Date(year, month, prev, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Year(), next.Month(), next.Day()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

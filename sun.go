package suntime

import (
	"fmt"
	"time"

	"github.com/subtlepseudonym/suntime/solar"
)

// ErrDomain is returned, wrapped, when the sun does not rise or set on
// the requested date. Use errors.As with *solar.DomainError for details.
var ErrDomain = solar.ErrDomain

// ErrLongitude is returned, wrapped, when the longitude is NaN or
// infinite.
var ErrLongitude = solar.ErrLongitude

// Sun is the sunrise, solar noon and sunset for one date and location.
// All three times are in the fixed zone of Offset.
type Sun struct {
	Date     Date
	Location Location
	Offset   UTCOffset

	Sunrise time.Time
	Noon    time.Time
	Sunset  time.Time
}

// Calculate computes sunrise, solar noon and sunset for date at loc. The
// times are computed in UTC first and then moved to offset, so their
// wall clock is the UTC wall clock shifted by offset.Duration().
func Calculate(date Date, loc Location, offset UTCOffset) (Sun, error) {
	times, err := solar.Compute(date.Year, date.Month, date.Day, loc.Latitude, loc.Longitude)
	if err != nil {
		return Sun{}, fmt.Errorf("%s: %s: %w", loc.Name, date, err)
	}

	sunrise, noon, sunset := times.DateTimes()
	zone := offset.Location()

	return Sun{
		Date:     date,
		Location: loc,
		Offset:   offset,
		Sunrise:  sunrise.In(zone),
		Noon:     noon.In(zone),
		Sunset:   sunset.In(zone),
	}, nil
}

// DayLength is the time between sunrise and sunset.
func (s Sun) DayLength() time.Duration {
	return s.Sunset.Sub(s.Sunrise)
}

// At returns the time of the given event, or the zero time for an
// unknown event.
func (s Sun) At(event Event) time.Time {
	switch event {
	case Sunrise:
		return s.Sunrise
	case Noon:
		return s.Noon
	case Sunset:
		return s.Sunset
	default:
		return time.Time{}
	}
}

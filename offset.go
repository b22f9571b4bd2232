package suntime

import (
	"fmt"
	"time"
)

// UTC is the zero offset.
var UTC = NewUTCOffset("UTC", 0, 0, 0)

// UTCOffset is a fixed shift from UTC. It is not a time zone: there
// are no daylight saving rules. The components may have any sign and
// magnitude; the offset is their combined duration.
type UTCOffset struct {
	name    string
	hours   int
	minutes int
	seconds int
}

func NewUTCOffset(name string, hours, minutes, seconds int) UTCOffset {
	return UTCOffset{
		name:    name,
		hours:   hours,
		minutes: minutes,
		seconds: seconds,
	}
}

func (o UTCOffset) Name() string { return o.name }
func (o UTCOffset) Hours() int   { return o.hours }
func (o UTCOffset) Minutes() int { return o.minutes }
func (o UTCOffset) Seconds() int { return o.seconds }

// Duration returns the combined offset.
func (o UTCOffset) Duration() time.Duration {
	return time.Duration(o.hours)*time.Hour +
		time.Duration(o.minutes)*time.Minute +
		time.Duration(o.seconds)*time.Second
}

// Location returns a fixed zone for the offset, named after it.
func (o UTCOffset) Location() *time.Location {
	return time.FixedZone(o.name, int(o.Duration()/time.Second))
}

// Add sums the components of both offsets. The result is named "o+other".
func (o UTCOffset) Add(other UTCOffset) UTCOffset {
	return UTCOffset{
		name:    fmt.Sprintf("%s+%s", o.name, other.name),
		hours:   o.hours + other.hours,
		minutes: o.minutes + other.minutes,
		seconds: o.seconds + other.seconds,
	}
}

// Sub subtracts the components of other. The result is named "o-other".
func (o UTCOffset) Sub(other UTCOffset) UTCOffset {
	return UTCOffset{
		name:    fmt.Sprintf("%s-%s", o.name, other.name),
		hours:   o.hours - other.hours,
		minutes: o.minutes - other.minutes,
		seconds: o.seconds - other.seconds,
	}
}

// Compare returns -1, 0 or +1 as o is shorter than, equal to or longer
// than other. Names are ignored.
func (o UTCOffset) Compare(other UTCOffset) int {
	a, b := o.Duration(), other.Duration()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both offsets represent the same duration, so
// 1h equals 60m regardless of names.
func (o UTCOffset) Equal(other UTCOffset) bool {
	return o.Compare(other) == 0
}

func (o UTCOffset) Less(other UTCOffset) bool {
	return o.Compare(other) < 0
}

func (o UTCOffset) String() string {
	return fmt.Sprintf("%s(%s)", o.name, o.Duration())
}

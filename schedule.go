package suntime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// searchDays bounds how far ahead Next looks. Polar day and night
// last less than a year, so a year and a margin always finds the next
// event when one exists.
const searchDays = 368

// Event is a solar event that a schedule can fire on.
type Event int

const (
	Sunrise Event = iota
	Noon
	Sunset
)

func (e Event) String() string {
	switch e {
	case Sunrise:
		return "sunrise"
	case Noon:
		return "noon"
	case Sunset:
		return "sunset"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// ParseEvent parses "sunrise", "noon" or "sunset", with or without a
// leading '@'.
func ParseEvent(s string) (Event, error) {
	switch strings.ToLower(strings.TrimPrefix(s, "@")) {
	case "sunrise":
		return Sunrise, nil
	case "noon":
		return Noon, nil
	case "sunset":
		return Sunset, nil
	default:
		return 0, fmt.Errorf("unknown solar event %q", s)
	}
}

// EventSchedule fires at a solar event at Location, shifted by Offset.
// When Zone is set, Next reports times in its fixed zone instead of the
// location of now.
//
// This implements robfig/cron.Schedule
type EventSchedule struct {
	Location Location
	Event    Event
	Offset   time.Duration
	Zone     UTCOffset

	Logger *zap.Logger
}

func (s EventSchedule) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Next returns the first occurrence of the event, plus Offset, strictly
// after now. Days without the event, such as polar night for sunrise,
// are skipped. The zero time is returned when nothing occurs within the
// search window, which cron treats as never.
func (s EventSchedule) Next(now time.Time) time.Time {
	log := s.logger().With(
		zap.String("location", s.Location.Name),
		zap.Stringer("event", s.Event),
	)

	// Events computed for a UTC date can fall on the previous UTC day
	// far east of Greenwich, so start one day before the earliest event
	// that can still fire after now.
	date := DateOf(now.Add(-s.Offset).UTC()).AddDays(-1)
	for i := 0; i < searchDays; i++ {
		sun, err := Calculate(date, s.Location, UTC)
		if err != nil {
			if !errors.Is(err, ErrDomain) {
				log.Error("calculate sun", zap.Stringer("date", date), zap.Error(err))
				return time.Time{}
			}
			log.Debug("no event", zap.Stringer("date", date), zap.Error(err))
			date = date.AddDays(1)
			continue
		}

		next := sun.At(s.Event).Add(s.Offset)
		if next.After(now) {
			log.Debug("next event", zap.Time("at", next), zap.Duration("offset", s.Offset))
			if s.Zone != (UTCOffset{}) {
				return next.In(s.Zone.Location())
			}
			return next.In(now.Location())
		}
		date = date.AddDays(1)
	}

	log.Warn("no event within search window", zap.Time("now", now), zap.Int("days", searchDays))
	return time.Time{}
}

// ParseSchedule parses a solar schedule of the form "@sunset" or
// "@sunrise -30m": an event name and an optional duration to shift it
// by. Any other spec is parsed as a standard cron expression.
func ParseSchedule(spec string, loc Location, logger *zap.Logger) (cron.Schedule, error) {
	spec = strings.TrimSpace(spec)
	if !strings.HasPrefix(spec, "@") {
		return cron.ParseStandard(spec)
	}

	fields := strings.Fields(spec)
	event, err := ParseEvent(fields[0])
	if err != nil {
		// @daily, @every 1h and friends
		return cron.ParseStandard(spec)
	}

	var offset time.Duration
	switch len(fields) {
	case 1:
	case 2:
		offset, err = time.ParseDuration(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s offset: %w", event, err)
		}
	default:
		return nil, fmt.Errorf("parse %s schedule: unexpected fields %q", event, fields[2:])
	}

	return EventSchedule{
		Location: loc,
		Event:    event,
		Offset:   offset,
		Logger:   logger,
	}, nil
}

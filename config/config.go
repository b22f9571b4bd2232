package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/subtlepseudonym/suntime"
)

// Offset is the YAML form of suntime.UTCOffset.
type Offset struct {
	Name    string `yaml:"name"`
	Hours   int    `yaml:"hours"`
	Minutes int    `yaml:"minutes,omitempty"`
	Seconds int    `yaml:"seconds,omitempty"`
}

// Place is a named location and the offset its times are reported in.
// A missing offset means UTC.
type Place struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`  // degrees north
	Longitude float64 `yaml:"longitude"` // degrees east
	Offset    *Offset `yaml:"offset,omitempty"`
}

func (p Place) Location() suntime.Location {
	return suntime.NewLocation(p.Name, p.Latitude, p.Longitude)
}

func (p Place) UTCOffset() suntime.UTCOffset {
	if p.Offset == nil {
		return suntime.UTC
	}
	name := p.Offset.Name
	if name == "" {
		name = p.Name
	}
	return suntime.NewUTCOffset(name, p.Offset.Hours, p.Offset.Minutes, p.Offset.Seconds)
}

// Schedule names a place and when to fire there: "@sunrise",
// "@noon" or "@sunset" with an optional offset ("@sunset -30m"), or a
// standard cron expression.
type Schedule struct {
	Name     string `yaml:"name"`
	Place    string `yaml:"place"`
	Schedule string `yaml:"schedule"`
}

type Config struct {
	Places    []Place    `yaml:"places"`
	Schedules []Schedule `yaml:"schedules"`
}

func Open(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

func Parse(data []byte) (*Config, error) {
	var config Config
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &config, nil
}

// Place returns the place with the given name.
func (c *Config) Place(name string) (Place, bool) {
	for _, p := range c.Places {
		if p.Name == name {
			return p, true
		}
	}
	return Place{}, false
}

// Validate checks that coordinates are in range, place names are unique
// and every schedule references a place and parses. The calculation
// itself does not range check, so this is the place to do it.
func (c *Config) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(c.Places))
	for _, p := range c.Places {
		if p.Name == "" {
			errs = append(errs, errors.New("place with empty name"))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("duplicate place %q", p.Name))
		}
		seen[p.Name] = true

		if p.Latitude < -90 || p.Latitude > 90 {
			errs = append(errs, fmt.Errorf("place %q: latitude %g out of range [-90, 90]", p.Name, p.Latitude))
		}
		if p.Longitude < -180 || p.Longitude > 180 {
			errs = append(errs, fmt.Errorf("place %q: longitude %g out of range [-180, 180]", p.Name, p.Longitude))
		}
	}

	for _, s := range c.Schedules {
		place, ok := c.Place(s.Place)
		if !ok {
			errs = append(errs, fmt.Errorf("schedule %q references missing place %q", s.Name, s.Place))
			continue
		}
		if _, err := suntime.ParseSchedule(s.Schedule, place.Location(), nil); err != nil {
			errs = append(errs, fmt.Errorf("schedule %q: %w", s.Name, err))
		}
	}

	return errors.Join(errs...)
}

// BuildSchedules parses every schedule, keyed by schedule name. Solar
// event schedules report their times in the place's offset.
func (c *Config) BuildSchedules(logger *zap.Logger) (map[string]cron.Schedule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	schedules := make(map[string]cron.Schedule, len(c.Schedules))
	for _, s := range c.Schedules {
		place, ok := c.Place(s.Place)
		if !ok {
			return nil, fmt.Errorf("schedule %q references missing place %q", s.Name, s.Place)
		}

		schedule, err := suntime.ParseSchedule(s.Schedule, place.Location(), logger.Named(s.Name))
		if err != nil {
			return nil, fmt.Errorf("schedule %q: %w", s.Name, err)
		}
		if event, ok := schedule.(suntime.EventSchedule); ok {
			event.Zone = place.UTCOffset()
			schedule = event
		}
		schedules[s.Name] = schedule
	}

	return schedules, nil
}

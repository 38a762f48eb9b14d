package cliconfig

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/driplab/driptweet/internal/domain"
)

// DefaultPrefix tags published messages, e.g. "TRCP 7: ...".
const DefaultPrefix = "TRCP"

// DefaultDailyAt is the default daily posting time, 24-hour clock.
const DefaultDailyAt = "09:00"

// Config holds CLI configuration for driptweet.
type Config struct {
	StorePath string
	Prefix    string

	// DailyAt is the daily posting time as "HH:MM". Ignored when Interval
	// is set.
	DailyAt  string
	Interval time.Duration

	Once       bool
	Simulate   bool
	Progress   bool
	WatchStore bool

	// Gateway credentials, opaque to everything but the Twitter adapter.
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string

	// Derived from DailyAt during Validate.
	DailyHour   int
	DailyMinute int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Prefix:     DefaultPrefix,
		DailyAt:    DefaultDailyAt,
		Progress:   true,
		WatchStore: true,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("%w: store is required", domain.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Prefix) == "" {
		return fmt.Errorf("%w: prefix must not be empty", domain.ErrInvalidConfig)
	}
	if strings.ContainsAny(c.Prefix, "\n\r") {
		return fmt.Errorf("%w: prefix must be a single line", domain.ErrInvalidConfig)
	}

	if c.Interval < 0 {
		return fmt.Errorf("%w: interval must be positive", domain.ErrInvalidConfig)
	}
	if c.Interval == 0 {
		h, m, err := ParseClock(c.DailyAt)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
		}
		c.DailyHour, c.DailyMinute = h, m
	}

	if !c.credentialsComplete() {
		return fmt.Errorf("%w: all four gateway credentials are required", domain.ErrInvalidConfig)
	}
	return nil
}

func (c *Config) credentialsComplete() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" &&
		c.AccessToken != "" && c.AccessSecret != ""
}

// clockRE accepts 24-hour times with an optional colon: "9:00", "09:00",
// "2359".
var clockRE = regexp.MustCompile(`^([01]?\d|2[0-3]):?([0-5]\d)$`)

// ParseClock parses a 24-hour "HH:MM" time of day.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid time %q, must be 00:00 - 23:59", s)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

package format

import (
	"errors"
	"fmt"
)

// TimeFormat selects between 12-hour and 24-hour display of times of day.
type TimeFormat string

const (
	TwelveHour     TimeFormat = "12h"
	TwentyFourHour TimeFormat = "24h"
)

// ErrInvalidTimeFormat indicates a time format other than "12h" or "24h"
var ErrInvalidTimeFormat = errors.New("time format must be either 12h or 24h")

func (f TimeFormat) IsValid() bool {
	return f == TwelveHour || f == TwentyFourHour
}

// UnmarshalText accepts "12h" and "24h"; the empty string selects [TwentyFourHour].
func (f *TimeFormat) UnmarshalText(text []byte) error {
	parsed := TimeFormat(text)
	if parsed == "" {
		parsed = TwentyFourHour
	}

	if !parsed.IsValid() {
		return fmt.Errorf("could not decode time format %q: %w", string(text), ErrInvalidTimeFormat)
	}

	*f = parsed
	return nil
}

func (f TimeFormat) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

// hour12 maps an hour of the day onto a 12-hour clock face, where both midnight and noon are 12.
func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func period(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}

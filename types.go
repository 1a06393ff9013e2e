package datetimepicker

import (
	"errors"
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"github.com/davejbax/go-datetimepicker/internal/format"
	"github.com/davejbax/go-datetimepicker/internal/view"
	"time"
)

type (
	// Date is a naive calendar date
	Date = calendar.Date

	// DateTime is a naive local date-time with minute resolution; a nil *DateTime means "no selection"
	DateTime = calendar.DateTime

	// Day is one cell of a 42-day month grid
	Day = calendar.Day

	// TimeFormat selects 12-hour or 24-hour display
	TimeFormat = format.TimeFormat

	// TimeOption is one entry in the time list
	TimeOption = format.TimeOption

	// ViewState is the sub-view shown while the picker is open
	ViewState = view.State
)

const (
	TwelveHour     = format.TwelveHour
	TwentyFourHour = format.TwentyFourHour

	DateGrid = view.DateGrid
	TimeList = view.TimeList
)

// ErrInvalidTimeFormat indicates a time format other than "12h" or "24h"
var ErrInvalidTimeFormat = format.ErrInvalidTimeFormat

// ErrInvalidDateTime indicates a configured value or bound naming a day or time of day that does not exist
var ErrInvalidDateTime = errors.New("date-time does not exist")

// Clock supplies the current time, which is only used to mark today's cell and to pick the initial month.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the [Clock] interface
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

package datetimepicker

import (
	"github.com/davejbax/go-datetimepicker/internal/format"
	"github.com/sirupsen/logrus"
	"io"
)

// Options configures a [Picker]. Start from [DefaultOptions]; the zero value disables time selection, closing on
// select, and clearing.
type Options struct {
	// Value is the initial selection, or nil for none
	Value *DateTime

	// MinDate and MaxDate bound the selectable days. Either may be nil. MinDate must not be after MaxDate; this is
	// not checked.
	MinDate *DateTime
	MaxDate *DateTime

	// Format is the display layout; see [FormatDateTime] for the tokens
	Format string

	TimeFormat TimeFormat

	// ShowTimeSelect makes the time list reachable after a date is picked
	ShowTimeSelect bool

	CloseOnSelect bool

	// Clearable allows the selection to be cleared
	Clearable bool

	// Disabled makes the picker ignore every user action. Programmatic value changes still apply.
	Disabled bool

	// Interval is the spacing of the time list in minutes
	Interval int

	Clock  Clock
	Logger logrus.FieldLogger

	// OnChange is called once for every committed selection change, including clears, with a copy of the new value
	OnChange func(*DateTime)
}

// DefaultOptions returns the options of a stock picker: ISO-like 24-hour display, time selection enabled, closing
// on select, clearable, and 15-minute time steps.
func DefaultOptions() Options {
	return Options{
		Format:         format.DefaultLayout,
		TimeFormat:     format.TwentyFourHour,
		ShowTimeSelect: true,
		CloseOnSelect:  true,
		Clearable:      true,
		Interval:       format.DefaultInterval,
	}
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = format.DefaultLayout
	}

	if o.TimeFormat == "" {
		o.TimeFormat = format.TwentyFourHour
	}

	if o.Interval <= 0 {
		o.Interval = format.DefaultInterval
	}

	if o.Clock == nil {
		o.Clock = systemClock{}
	}

	if o.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		o.Logger = logger
	}

	return o
}

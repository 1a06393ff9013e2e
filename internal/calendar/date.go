package calendar

import (
	"fmt"
	"time"
)

// Date is a naive calendar date. There is no location attached; all arithmetic is done in UTC so that
// daylight saving transitions can never shift a day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t, read in t's own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsValid reports whether d names a day that exists in the Gregorian calendar.
func (d Date) IsValid() bool {
	return d.Month >= time.January && d.Month <= time.December && d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// AddDays returns the date delta days after d. Negative deltas move backwards.
func (d Date) AddDays(delta int) Date {
	return DateOf(d.time().AddDate(0, 0, delta))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to, or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// At returns the date-time at hour:minute on d.
func (d Date) At(hour, minute int) DateTime {
	return DateTime{Date: d, Hour: hour, Minute: minute}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateTime is a naive local date-time with minute resolution. It is the value a picker selects.
type DateTime struct {
	Date
	Hour   int
	Minute int
}

// DateTimeOf returns the date-time of t, truncated to the minute and read in t's own location.
func DateTimeOf(t time.Time) DateTime {
	return DateOf(t).At(t.Hour(), t.Minute())
}

// IsValid reports whether the date exists and the time of day lies within 00:00-23:59.
func (v DateTime) IsValid() bool {
	return v.Date.IsValid() && v.Hour >= 0 && v.Hour <= 23 && v.Minute >= 0 && v.Minute <= 59
}

// Compare orders date-times chronologically, returning -1, 0 or +1.
func (v DateTime) Compare(o DateTime) int {
	if c := v.Date.Compare(o.Date); c != 0 {
		return c
	}
	if v.Hour != o.Hour {
		return cmpInt(v.Hour, o.Hour)
	}
	return cmpInt(v.Minute, o.Minute)
}

func (v DateTime) Before(o DateTime) bool {
	return v.Compare(o) < 0
}

func (v DateTime) After(o DateTime) bool {
	return v.Compare(o) > 0
}

// Time converts v into a time.Time in loc.
func (v DateTime) Time(loc *time.Location) time.Time {
	return time.Date(v.Year, v.Month, v.Day, v.Hour, v.Minute, 0, 0, loc)
}

func (v DateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d", v.Date, v.Hour, v.Minute)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

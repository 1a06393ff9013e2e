// Package selection owns the canonical selected date-time of a picker and merges the independent date and time edits
// into it.
package selection

import (
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"github.com/davejbax/go-datetimepicker/internal/format"
)

// Bounds are the optional minimum and maximum selectable date-times. A nil bound is open. Min <= Max is the caller's
// responsibility and is not checked.
type Bounds struct {
	Min *calendar.DateTime
	Max *calendar.DateTime
}

// Contains reports whether v lies within the bounds, inclusive at both ends.
func (b Bounds) Contains(v calendar.DateTime) bool {
	if b.Min != nil && v.Before(*b.Min) {
		return false
	}
	if b.Max != nil && v.After(*b.Max) {
		return false
	}
	return true
}

// Controller holds the current selection. It is not safe for concurrent use; a picker serialises all updates.
//
// Every method that commits a change returns a fresh copy of the new value, so callers can never alias the
// controller's own state.
type Controller struct {
	value  *calendar.DateTime
	bounds Bounds
}

func NewController(initial *calendar.DateTime, bounds Bounds) *Controller {
	return &Controller{value: clone(initial), bounds: bounds}
}

// Value returns a snapshot of the selection, or nil when nothing is selected.
func (c *Controller) Value() *calendar.DateTime {
	return clone(c.value)
}

func (c *Controller) Bounds() Bounds {
	return c.bounds
}

// IsDateDisabled reports whether a day cannot be picked: the start of the day lies strictly before the minimum or
// strictly after the maximum.
func (c *Controller) IsDateDisabled(d calendar.Date) bool {
	return !c.bounds.Contains(d.At(0, 0))
}

// SelectDate selects day, keeping the time of the previous selection or using 00:00 if there was none. Picking a
// disabled day changes nothing and reports false.
func (c *Controller) SelectDate(day calendar.Date) (*calendar.DateTime, bool) {
	if c.IsDateDisabled(day) {
		return nil, false
	}

	next := day.At(0, 0)
	if c.value != nil {
		next.Hour, next.Minute = c.value.Hour, c.value.Minute
	}

	c.value = &next
	return c.Value(), true
}

// SelectTime applies a 24-hour "HH:MM" time to the selected date. It reports false, changing nothing, when there is no
// date to attach the time to or the value is malformed.
func (c *Controller) SelectTime(hhmm string) (*calendar.DateTime, bool) {
	if c.value == nil {
		return nil, false
	}

	hour, minute, ok := format.ParseTimeOfDay(hhmm)
	if !ok {
		return nil, false
	}

	next := c.value.Date.At(hour, minute)
	c.value = &next
	return c.Value(), true
}

// ParseTyped replaces the selection with the value parsed from typed text. Typed text is held to the same bounds as a
// grid pick: text without a recognisable date, or whose day is disabled, leaves the selection untouched and reports
// false.
func (c *Controller) ParseTyped(text string) (*calendar.DateTime, bool) {
	parsed, ok := format.Parse(text)
	if !ok || c.IsDateDisabled(parsed.Date) {
		return nil, false
	}

	c.value = &parsed
	return c.Value(), true
}

// Set replaces the selection outright, bypassing bounds. It is used for programmatic value changes.
func (c *Controller) Set(v *calendar.DateTime) {
	c.value = clone(v)
}

// Clear removes the selection. Clearing is always a committed change, even if nothing was selected.
func (c *Controller) Clear() {
	c.value = nil
}

func clone(v *calendar.DateTime) *calendar.DateTime {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}

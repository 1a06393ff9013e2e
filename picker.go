// Package datetimepicker is the computation core of a date-and-time picker widget: month grids, display
// formatting, typed-text parsing, time lists, bounded selection and the open/close view state.
//
// A [Picker] is driven by dispatching one [Action] per user interaction and reading back its [State]. Rendering is
// left entirely to the host.
package datetimepicker

import (
	"fmt"
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"github.com/davejbax/go-datetimepicker/internal/format"
	"github.com/davejbax/go-datetimepicker/internal/selection"
	"github.com/davejbax/go-datetimepicker/internal/view"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"time"
)

// State is a snapshot of everything a host needs to render a picker.
type State struct {
	// Selection is a copy of the selected value, or nil
	Selection *DateTime

	// Display is the selection rendered with the configured format, or "" without a selection
	Display string

	Open bool
	View ViewState

	// Year and Month are the month shown by the grid
	Year  int
	Month time.Month
}

// Cell is a grid day annotated for rendering.
type Cell struct {
	Day

	Today    bool
	Selected bool
	Disabled bool
}

// Picker is the state of one picker widget. It is not safe for concurrent use: the host must serialise actions,
// dispatching one per interaction.
type Picker struct {
	id   string
	opts Options
	log  logrus.FieldLogger

	selection *selection.Controller
	view      *view.Machine

	year  int
	month time.Month
}

func New(opts Options) (*Picker, error) {
	opts = opts.withDefaults()

	if !opts.TimeFormat.IsValid() {
		return nil, fmt.Errorf("could not create picker with time format %q: %w", opts.TimeFormat, ErrInvalidTimeFormat)
	}

	for _, v := range []*DateTime{opts.Value, opts.MinDate, opts.MaxDate} {
		if v != nil && !v.IsValid() {
			return nil, fmt.Errorf("could not create picker with date-time %s: %w", v, ErrInvalidDateTime)
		}
	}

	id := uuid.NewString()
	p := &Picker{
		id:        id,
		opts:      opts,
		log:       opts.Logger.WithField("picker", id),
		selection: selection.NewController(opts.Value, selection.Bounds{Min: opts.MinDate, Max: opts.MaxDate}),
		view:      view.NewMachine(opts.ShowTimeSelect, opts.CloseOnSelect),
	}

	if opts.Value != nil {
		p.year, p.month = opts.Value.Year, opts.Value.Month
	} else {
		now := opts.Clock.Now()
		p.year, p.month = now.Year(), now.Month()
	}

	return p, nil
}

// ID uniquely identifies this picker in log entries
func (p *Picker) ID() string {
	return p.id
}

// Dispatch applies one action and returns the resulting state. Actions that cannot apply (a pick on a disabled day,
// a time before any date, text without a date, anything while the picker is disabled) leave the state unchanged and
// do not notify. A nil action is ignored.
func (p *Picker) Dispatch(a Action) State {
	if a == nil {
		return p.State()
	}

	entry := p.log.WithField("action", a.actionName())

	if _, programmatic := a.(SetValue); p.opts.Disabled && !programmatic {
		entry.Debug("ignoring action on disabled picker")
		return p.State()
	}

	switch a := a.(type) {
	case PickDate:
		v, ok := p.selection.SelectDate(a.Date)
		if !ok {
			entry.WithField("date", a.Date.String()).Debug("ignoring pick on disabled day")
			break
		}
		p.view.DatePicked()
		p.notify(entry, v)

	case PickTime:
		if !p.opts.ShowTimeSelect {
			entry.Debug("ignoring time pick with time selection disabled")
			break
		}
		v, ok := p.selection.SelectTime(a.Value)
		if !ok {
			entry.WithField("value", a.Value).Debug("ignoring time pick without a selected date")
			break
		}
		p.view.TimePicked()
		p.notify(entry, v)

	case TypeText:
		v, ok := p.selection.ParseTyped(a.Text)
		if !ok {
			entry.Debug("typed text did not yield a selectable date")
			break
		}
		p.year, p.month = v.Year, v.Month
		p.notify(entry, v)

	case Clear:
		if !p.opts.Clearable {
			entry.Debug("ignoring clear on non-clearable picker")
			break
		}
		p.selection.Clear()
		p.view.BackToCalendar()
		p.notify(entry, nil)

	case NavigateMonth:
		p.year, p.month = calendar.ShiftMonth(p.year, p.month, a.Delta)

	case Open:
		p.view.Open()

	case Close:
		p.view.Close()

	case Toggle:
		p.view.Toggle()

	case BackToCalendar:
		p.view.BackToCalendar()

	case SetValue:
		if a.Value != nil && !a.Value.IsValid() {
			entry.WithField("value", a.Value.String()).Debug("ignoring invalid value")
			break
		}
		p.selection.Set(a.Value)
		if a.Value != nil {
			p.year, p.month = a.Value.Year, a.Value.Month
		}
	}

	return p.State()
}

func (p *Picker) notify(entry logrus.FieldLogger, v *DateTime) {
	entry.WithField("value", format.Format(v, format.DefaultLayout, format.TwentyFourHour)).Debug("selection changed")

	if p.opts.OnChange != nil {
		p.opts.OnChange(v)
	}
}

func (p *Picker) State() State {
	v := p.selection.Value()
	return State{
		Selection: v,
		Display:   format.Format(v, p.opts.Format, p.opts.TimeFormat),
		Open:      p.view.IsOpen(),
		View:      p.view.State(),
		Year:      p.year,
		Month:     p.month,
	}
}

// Grid returns the 42 cells of the visible month.
func (p *Picker) Grid() []Cell {
	today := calendar.DateOf(p.opts.Clock.Now())
	selected := p.selection.Value()

	days := calendar.Build(p.year, p.month)
	cells := make([]Cell, len(days))
	for i, day := range days {
		cells[i] = Cell{
			Day:      day,
			Today:    day.Date == today,
			Selected: selected != nil && day.Date == selected.Date,
			Disabled: p.selection.IsDateDisabled(day.Date),
		}
	}

	return cells
}

// Title names the visible month, e.g. "January 2023"
func (p *Picker) Title() string {
	return fmt.Sprintf("%s %d", p.month, p.year)
}

func (p *Picker) IsDateDisabled(d Date) bool {
	return p.selection.IsDateDisabled(d)
}

// TimeOptions lists the entries of the time list
func (p *Picker) TimeOptions() []TimeOption {
	return format.TimeOptions(p.opts.Interval, p.opts.TimeFormat)
}

// SelectedTime is the [TimeOption.Value] matching the selection's time of day, or "" without a selection. The time
// need not be one of the listed options.
func (p *Picker) SelectedTime() string {
	v := p.selection.Value()
	if v == nil {
		return ""
	}
	return format.TimeValue(v.Hour, v.Minute)
}

// FormatDateTime renders v with a layout made of the tokens yyyy, MM, dd, HH, hh, mm and a. Text between single
// quotes is copied verbatim. A nil value renders as "".
func FormatDateTime(v *DateTime, layout string, timeFormat TimeFormat) string {
	return format.Format(v, layout, timeFormat)
}

// ParseDateTime reads typed text the way a picker does: the first YYYY-MM-DD in the text, plus the first HH:MM if
// any. The configured display layout plays no part. Out-of-range fields roll over, so "2023-02-30" reads as
// 2023-03-02. Bounds are not applied here; a picker applies them when the text is typed.
func ParseDateTime(text string) (*DateTime, bool) {
	v, ok := format.Parse(text)
	if !ok {
		return nil, false
	}
	return &v, true
}

package datetimepicker

// Action is an input event for [Picker.Dispatch]. Each interaction of the host widget maps to exactly one action.
type Action interface {
	actionName() string
}

// PickDate is a click on a grid cell
type PickDate struct {
	Date Date
}

// PickTime is a choice from the time list; Value is a 24-hour "HH:MM" [TimeOption.Value]
type PickTime struct {
	Value string
}

// TypeText is an edit of the text field. Unlike a programmatic value, typed text is bounds-checked: a typed date on a
// disabled day is ignored just like a pick on that day.
type TypeText struct {
	Text string
}

// Clear is a click on the clear button
type Clear struct{}

// NavigateMonth moves the visible month by Delta months
type NavigateMonth struct {
	Delta int
}

type Open struct{}

type Close struct{}

// Toggle is a click on the text field, which opens a closed picker and closes an open one
type Toggle struct{}

// BackToCalendar leaves the time list
type BackToCalendar struct{}

// SetValue is a programmatic change of the selection by the host. It bypasses bounds and does not notify. A value
// naming a day or time that does not exist is ignored.
type SetValue struct {
	Value *DateTime
}

func (PickDate) actionName() string       { return "pick-date" }
func (PickTime) actionName() string       { return "pick-time" }
func (TypeText) actionName() string       { return "type-text" }
func (Clear) actionName() string          { return "clear" }
func (NavigateMonth) actionName() string  { return "navigate-month" }
func (Open) actionName() string           { return "open" }
func (Close) actionName() string          { return "close" }
func (Toggle) actionName() string         { return "toggle" }
func (BackToCalendar) actionName() string { return "back-to-calendar" }
func (SetValue) actionName() string       { return "set-value" }

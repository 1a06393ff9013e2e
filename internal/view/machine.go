package view

import "fmt"

// State is the sub-view a picker presents while it is open.
type State uint8

const (
	DateGrid State = iota
	TimeList
)

func (s State) String() string {
	switch s {
	case DateGrid:
		return "date-grid"
	case TimeList:
		return "time-list"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Machine tracks whether a picker is open and which sub-view it shows.
//
// Transitions:
//
//	closed   --Open-->            DateGrid
//	DateGrid --DatePicked-->      TimeList  (time selection enabled)
//	DateGrid --DatePicked-->      closed    (time selection disabled, close on select)
//	TimeList --BackToCalendar-->  DateGrid
//	any      --TimePicked-->      closed    (close on select)
//	any      --Close-->           closed
type Machine struct {
	showTimeSelect bool
	closeOnSelect  bool

	open  bool
	state State
}

func NewMachine(showTimeSelect, closeOnSelect bool) *Machine {
	return &Machine{showTimeSelect: showTimeSelect, closeOnSelect: closeOnSelect}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) IsOpen() bool {
	return m.open
}

// Open shows the picker. Opening always starts on the date grid, whatever view was active when it last closed.
func (m *Machine) Open() {
	m.open = true
	m.state = DateGrid
}

func (m *Machine) Close() {
	m.open = false
}

// Toggle opens a closed picker and closes an open one.
func (m *Machine) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// DatePicked moves to the time list when time selection is enabled; otherwise the picker closes if it is configured
// to close on select.
func (m *Machine) DatePicked() {
	switch {
	case m.showTimeSelect:
		m.state = TimeList
	case m.closeOnSelect:
		m.Close()
	}
}

// TimePicked closes the picker if it is configured to close on select. A time can be picked from either view.
func (m *Machine) TimePicked() {
	if m.closeOnSelect {
		m.Close()
	}
}

// BackToCalendar returns from the time list to the date grid.
func (m *Machine) BackToCalendar() {
	if m.state == TimeList {
		m.state = DateGrid
	}
}

// Restore puts the machine into a previously saved position.
func (m *Machine) Restore(open bool, state State) {
	m.open = open
	m.state = state
	if !m.showTimeSelect {
		m.state = DateGrid
	}
}

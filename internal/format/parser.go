package format

import (
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"regexp"
	"strconv"
	"time"
)

var (
	datePattern = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	timePattern = regexp.MustCompile(`(\d{2}):(\d{2})`)
)

// Parse extracts a date-time from typed text. It does not follow any configured layout: it looks for the first
// YYYY-MM-DD anywhere in the text and, optionally, the first HH:MM. Without a time the result is at 00:00. An AM/PM
// marker is not interpreted, so text produced by a 12-hour layout does not round-trip for afternoon times.
//
// ok is false only when there is no date in the text. Fields out of their usual range roll over into the next
// valid value, so 2023-02-30 is 2023-03-02, 2023-13-01 is 2024-01-01 and 24:00 is midnight of the following day.
func Parse(text string) (calendar.DateTime, bool) {
	date := datePattern.FindStringSubmatch(text)
	if date == nil {
		return calendar.DateTime{}, false
	}

	// The patterns only admit ASCII digits, so Atoi cannot fail
	year, _ := strconv.Atoi(date[1])
	month, _ := strconv.Atoi(date[2])
	day, _ := strconv.Atoi(date[3])

	hour, minute := 0, 0
	if t := timePattern.FindStringSubmatch(text); t != nil {
		hour, _ = strconv.Atoi(t[1])
		minute, _ = strconv.Atoi(t[2])
	}

	return calendar.DateTimeOf(time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)), true
}

// ParseTimeOfDay reads a 24-hour "HH:MM" value, as produced by [TimeOptions].
func ParseTimeOfDay(value string) (hour, minute int, ok bool) {
	if len(value) != 5 || value[2] != ':' {
		return 0, 0, false
	}

	hour, err1 := strconv.Atoi(value[0:2])
	minute, err2 := strconv.Atoi(value[3:5])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

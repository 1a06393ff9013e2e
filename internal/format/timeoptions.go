package format

import "fmt"

// DefaultInterval is the spacing, in minutes, between consecutive time options.
const DefaultInterval = 15

const minutesPerDay = 24 * 60

// TimeOption is one entry of the time list. Value is always 24-hour "HH:MM"; Display follows the time format.
type TimeOption struct {
	Display string
	Value   string
}

// TimeOptions lists the times of day from 00:00 onwards, interval minutes apart, stopping before midnight. An
// interval that is not positive falls back to [DefaultInterval]. Steps run on across the hour boundary rather than
// restarting at :00 each hour, so an interval that does not divide 60 (e.g. 25) gives ceil(1440/interval) entries.
func TimeOptions(interval int, timeFormat TimeFormat) []TimeOption {
	if interval <= 0 {
		interval = DefaultInterval
	}

	options := make([]TimeOption, 0, (minutesPerDay+interval-1)/interval)
	for m := 0; m < minutesPerDay; m += interval {
		hour, minute := m/60, m%60
		options = append(options, TimeOption{
			Display: DisplayTime(hour, minute, timeFormat),
			Value:   TimeValue(hour, minute),
		})
	}

	return options
}

// TimeValue renders a time of day as 24-hour "HH:MM".
func TimeValue(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// DisplayTime renders a time of day for display: "HH:MM" for 24-hour and "hh:MM AM" for 12-hour.
func DisplayTime(hour, minute int, timeFormat TimeFormat) string {
	if timeFormat == TwelveHour {
		return fmt.Sprintf("%02d:%02d %s", hour12(hour), minute, period(hour))
	}
	return TimeValue(hour, minute)
}

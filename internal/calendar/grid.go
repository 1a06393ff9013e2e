package calendar

import (
	"iter"
	"time"
)

// GridSize is the number of cells in a month grid: six weeks of seven days. Six rows are always enough, since
// a 31-day month starting on a Saturday spans exactly six weeks.
const GridSize = 6 * 7

// WeekdayHeaders are the column headings of a grid produced by [Build]; the grid always starts on Sunday.
var WeekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Day is one cell of a month grid. IsCurrentMonth is false for the padding days borrowed from the adjacent months.
type Day struct {
	Date           Date
	DayOfMonth     int
	IsCurrentMonth bool
}

// DaysInMonth returns the number of days in the given month. Day 0 of the following month normalises to the last
// day of this one, which takes care of leap years for us.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftMonth moves (year, month) by delta months, rolling the year over in either direction. The result month is
// always in the range January-December, even if the input month was not.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// Build returns the 42-cell grid for the given month, in chronological order, starting on the Sunday on or before
// the first of the month. Out-of-range months are normalised first, so Build(2023, 13) is the grid for January 2024.
func Build(year int, month time.Month) []Day {
	year, month = ShiftMonth(year, month, 0)

	daysInMonth := DaysInMonth(year, month)
	firstWeekday := int(Date{Year: year, Month: month, Day: 1}.Weekday())

	days := make([]Day, 0, GridSize)

	prevYear, prevMonth := ShiftMonth(year, month, -1)
	daysInPrevMonth := DaysInMonth(prevYear, prevMonth)
	for i := firstWeekday - 1; i >= 0; i-- {
		dayOfMonth := daysInPrevMonth - i
		days = append(days, Day{
			Date:       Date{Year: prevYear, Month: prevMonth, Day: dayOfMonth},
			DayOfMonth: dayOfMonth,
		})
	}

	for dayOfMonth := 1; dayOfMonth <= daysInMonth; dayOfMonth++ {
		days = append(days, Day{
			Date:           Date{Year: year, Month: month, Day: dayOfMonth},
			DayOfMonth:     dayOfMonth,
			IsCurrentMonth: true,
		})
	}

	nextYear, nextMonth := ShiftMonth(year, month, 1)
	for dayOfMonth := 1; len(days) < GridSize; dayOfMonth++ {
		days = append(days, Day{
			Date:       Date{Year: nextYear, Month: nextMonth, Day: dayOfMonth},
			DayOfMonth: dayOfMonth,
		})
	}

	return days
}

// Weeks splits a grid into its rows of seven days. Any trailing partial row is yielded as-is.
func Weeks[T any](days []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for start := 0; start < len(days); start += 7 {
			end := min(start+7, len(days))
			if !yield(days[start:end]) {
				return
			}
		}
	}
}

package calendar_test

import (
	"fmt"
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2023, time.January, 31},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%04d-%02d", c.year, c.month), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, calendar.DaysInMonth(c.year, c.month), "DaysInMonth should return the true length of the month")
		})
	}
}

func TestShiftMonth(t *testing.T) {
	cases := []struct {
		year          int
		month         time.Month
		delta         int
		expectedYear  int
		expectedMonth time.Month
	}{
		{2023, time.December, 1, 2024, time.January},
		{2024, time.January, -1, 2023, time.December},
		{2023, time.June, 0, 2023, time.June},
		{2023, time.March, 25, 2025, time.April},
		{2023, time.March, -27, 2020, time.December},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%04d-%02d%+d", c.year, c.month, c.delta), func(t *testing.T) {
			t.Parallel()

			year, month := calendar.ShiftMonth(c.year, c.month, c.delta)
			assert.Equal(t, c.expectedYear, year, "ShiftMonth should roll the year over")
			assert.Equal(t, c.expectedMonth, month, "ShiftMonth should wrap the month")
		})
	}
}

func TestBuild_Invariants(t *testing.T) {
	for year := 1999; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			days := calendar.Build(year, month)

			require.Len(t, days, calendar.GridSize, "Build should always return 42 cells for %04d-%02d", year, month)
			assert.Equal(t, time.Sunday, days[0].Date.Weekday(), "grid for %04d-%02d should start on a Sunday", year, month)

			for i := 1; i < len(days); i++ {
				assert.Equal(t, days[i-1].Date.AddDays(1), days[i].Date, "cells for %04d-%02d should be consecutive days", year, month)
			}

			current := 0
			for _, day := range days {
				assert.Equal(t, day.Date.Day, day.DayOfMonth, "DayOfMonth should match the cell date")
				isTarget := day.Date.Year == year && day.Date.Month == month
				assert.Equal(t, isTarget, day.IsCurrentMonth, "IsCurrentMonth should be set for exactly the requested month")
				if day.IsCurrentMonth {
					current++
				}
			}
			assert.Equal(t, calendar.DaysInMonth(year, month), current, "grid for %04d-%02d should contain every day of the month", year, month)
		}
	}
}

func countLeading(days []calendar.Day) int {
	return slices.IndexFunc(days, func(d calendar.Day) bool { return d.IsCurrentMonth })
}

func TestBuild_January2023StartsOnSunday(t *testing.T) {
	days := calendar.Build(2023, time.January)

	assert.Equal(t, 0, countLeading(days), "January 2023 starts on a Sunday, so there should be no leading cells")
	assert.Equal(t, calendar.Date{Year: 2023, Month: time.January, Day: 1}, days[0].Date)
	assert.Equal(t, calendar.Date{Year: 2023, Month: time.January, Day: 31}, days[30].Date)

	trailing := days[31:]
	require.Len(t, trailing, 11, "there should be 11 trailing cells")
	for i, day := range trailing {
		assert.Equal(t, calendar.Date{Year: 2023, Month: time.February, Day: i + 1}, day.Date, "trailing cells should come from February 2023")
		assert.False(t, day.IsCurrentMonth)
	}
}

func TestBuild_LeapFebruary(t *testing.T) {
	cases := []struct {
		year     int
		expected int
	}{
		{2024, 29},
		{2023, 28},
	}

	for _, c := range cases {
		t.Run(fmt.Sprint(c.year), func(t *testing.T) {
			t.Parallel()

			current := 0
			for _, day := range calendar.Build(c.year, time.February) {
				if day.IsCurrentMonth {
					current++
				}
			}
			assert.Equal(t, c.expected, current, "February should have the right number of current-month cells")
		})
	}
}

func TestBuild_DecemberRollsIntoNextYear(t *testing.T) {
	days := calendar.Build(2023, time.December)

	// December 2023 starts on a Friday
	require.Equal(t, 5, countLeading(days))
	assert.Equal(t, calendar.Date{Year: 2023, Month: time.November, Day: 26}, days[0].Date, "leading cells should come from November")

	last := days[len(days)-1]
	assert.Equal(t, 2024, last.Date.Year, "trailing cells should belong to the next year")
	assert.Equal(t, time.January, last.Date.Month)
	assert.Equal(t, calendar.Date{Year: 2024, Month: time.January, Day: 1}, days[5+31].Date, "December 31st should be followed by January 1st of the next year")
}

func TestBuild_JanuaryBorrowsFromPreviousYear(t *testing.T) {
	days := calendar.Build(2024, time.January)

	// January 2024 starts on a Monday
	require.Equal(t, 1, countLeading(days))
	assert.Equal(t, calendar.Date{Year: 2023, Month: time.December, Day: 31}, days[0].Date, "leading cell should be December 31st of the previous year")
	assert.Equal(t, calendar.Date{Year: 2024, Month: time.February, Day: 1}, days[1+31].Date)
}

func TestBuild_NormalisesMonth(t *testing.T) {
	assert.Equal(t, calendar.Build(2024, time.January), calendar.Build(2023, 13), "month 13 should be treated as January of the next year")
	assert.Equal(t, calendar.Build(2023, time.December), calendar.Build(2024, 0), "month 0 should be treated as December of the previous year")
}

func TestWeeks(t *testing.T) {
	days := calendar.Build(2023, time.March)

	var rows [][]calendar.Day
	for week := range calendar.Weeks(days) {
		rows = append(rows, week)
	}

	require.Len(t, rows, 6, "a grid should split into six weeks")
	for _, row := range rows {
		assert.Len(t, row, 7)
		assert.Equal(t, time.Sunday, row[0].Date.Weekday(), "every week should start on a Sunday")
	}

	count := 0
	for range calendar.Weeks([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		count++
		break
	}
	assert.Equal(t, 1, count, "Weeks should stop when the consumer breaks")
}

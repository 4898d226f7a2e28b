package calendar

import (
	"fmt"
	"time"
)

// Day is one cell of a month grid
type Day struct {
	Num  int
	Date string // ISO "YYYY-MM-DD"
}

// Grid is the layout of one calendar month. The week starts on Monday,
// so LeadingBlanks is the number of empty cells before day 1.
type Grid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          []Day
}

// MonthGrid computes the grid for a month. time.Weekday has Sunday as 0,
// which maps to position 6 in a Monday-first week; everything else
// shifts left by one.
func MonthGrid(year int, month time.Month) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	leading := (int(first.Weekday()) + 6) % 7

	// Day zero of the next month is the last day of this one
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	grid := Grid{
		Year:          year,
		Month:         month,
		LeadingBlanks: leading,
		Days:          make([]Day, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		grid.Days = append(grid.Days, Day{Num: day, Date: DateString(year, month, day)})
	}
	return grid
}

// PrevMonth steps one month back, rolling the year over at January
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps one month forward, rolling the year over at December
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// DateString formats a date as the zero-padded ISO string the booking
// API uses
func DateString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Today returns the host's current date as an ISO string
func Today() string {
	now := time.Now()
	return DateString(now.Year(), now.Month(), now.Day())
}

// CurrentYearMonth returns the month the calendar opens on
func CurrentYearMonth() (int, time.Month) {
	now := time.Now()
	return now.Year(), now.Month()
}

// WeekdayHeaders are the Monday-first column labels
var WeekdayHeaders = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

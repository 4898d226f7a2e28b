package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/borgmon/room-booker/pkg/calendar"
	"github.com/borgmon/room-booker/pkg/models"
)

// CalendarView renders one month of bookings as a Monday-first grid.
// Day cells carry a marker when the cached bookings include that date,
// and tapping a day opens the list of its bookings.
type CalendarView struct {
	rb *RoomBooker

	year  int
	month time.Month

	titleLabel  *widget.Label
	statusLabel *widget.Label
	grid        *fyne.Container
	content     fyne.CanvasObject
}

func NewCalendarView(rb *RoomBooker) *CalendarView {
	cv := &CalendarView{rb: rb}
	cv.year, cv.month = calendar.CurrentYearMonth()

	cv.titleLabel = widget.NewLabel("")
	cv.titleLabel.TextStyle.Bold = true
	cv.titleLabel.Alignment = fyne.TextAlignCenter

	cv.statusLabel = widget.NewLabel("")
	cv.statusLabel.Importance = widget.MediumImportance
	cv.statusLabel.Alignment = fyne.TextAlignCenter
	cv.statusLabel.Hide()

	cv.grid = container.NewGridWithColumns(7)

	prevButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		cv.year, cv.month = calendar.PrevMonth(cv.year, cv.month)
		cv.Render()
	})
	nextButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		cv.year, cv.month = calendar.NextMonth(cv.year, cv.month)
		cv.Render()
	})

	header := container.NewBorder(nil, nil, prevButton, nextButton, cv.titleLabel)
	cv.content = container.NewBorder(
		container.NewVBox(header, cv.statusLabel),
		nil, nil, nil,
		container.NewScroll(cv.grid),
	)
	cv.Render()
	return cv
}

func (cv *CalendarView) Content() fyne.CanvasObject {
	return cv.content
}

// Render rebuilds the grid from the current store snapshot
func (cv *CalendarView) Render() {
	cv.statusLabel.Hide()
	cv.titleLabel.SetText(fmt.Sprintf("%s %d", cv.month, cv.year))

	grid := calendar.MonthGrid(cv.year, cv.month)
	counts := cv.rb.store.DatesWithBookings()
	today := calendar.Today()

	cv.grid.Objects = nil
	for _, name := range calendar.WeekdayHeaders {
		header := widget.NewLabel(name)
		header.Alignment = fyne.TextAlignCenter
		header.TextStyle.Bold = true
		cv.grid.Add(header)
	}
	for i := 0; i < grid.LeadingBlanks; i++ {
		cv.grid.Add(widget.NewLabel(""))
	}
	for _, day := range grid.Days {
		date := day.Date
		label := strconv.Itoa(day.Num)
		if counts[date] > 0 {
			label += " •"
		}
		cell := widget.NewButton(label, func() {
			cv.showDay(date)
		})
		if date == today {
			cell.Importance = widget.HighImportance
		}
		cv.grid.Add(cell)
	}
	cv.grid.Refresh()
}

// SetLoadFailed shows an explicit failure state instead of leaving a
// stale grid on screen without indication
func (cv *CalendarView) SetLoadFailed(err error) {
	logrus.WithError(err).Error("Failed to load bookings")
	cv.statusLabel.SetText("Failed to load bookings. " + loadErrorHint(err))
	cv.statusLabel.Show()
}

// showDay opens the bookings for one date, earliest first
func (cv *CalendarView) showDay(date string) {
	dayBookings := cv.rb.store.ForDate(date)

	var items fyne.CanvasObject
	if len(dayBookings) == 0 {
		empty := widget.NewLabel("No bookings")
		empty.Alignment = fyne.TextAlignCenter
		items = empty
	} else {
		list := container.NewVBox()
		for _, b := range dayBookings {
			list.Add(bookingCard(b))
		}
		items = list
	}

	scroll := container.NewScroll(items)
	scroll.SetMinSize(fyne.NewSize(360, 300))
	dialog.ShowCustom(date, "Close", scroll, cv.rb.window)
}

// bookingCard renders one booking: room, time range, requester
func bookingCard(b models.Booking) fyne.CanvasObject {
	title := widget.NewLabel(models.RoomName(b.RoomID))
	title.TextStyle.Bold = true
	timeRange := widget.NewLabel(b.TimeStart + " – " + b.TimeEnd)
	surname := widget.NewLabel(b.ManagerSurname)
	surname.TextStyle.Bold = true
	user := widget.NewLabel(b.UserName)
	user.Importance = widget.MediumImportance

	return container.NewVBox(title, timeRange, surname, user, widget.NewSeparator())
}

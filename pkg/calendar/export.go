package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/borgmon/room-booker/pkg/models"
)

// WriteICS encodes bookings as an iCalendar file: one VEVENT per
// booking, the room name as the summary and the requester surname in
// the description. Bookings whose date or times fail to parse are
// skipped rather than aborting the whole export.
func WriteICS(w io.Writer, bookings []models.Booking) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//room-booker//EN")

	now := time.Now()
	for _, b := range bookings {
		start, err := parseBookingTime(b.Date, b.TimeStart)
		if err != nil {
			continue
		}
		end, err := parseBookingTime(b.Date, b.TimeEnd)
		if err != nil {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("booking-%d@room-booker", b.ID))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
		event.Props.SetText(ical.PropSummary, models.RoomName(b.RoomID))
		event.Props.SetText(ical.PropDescription, fmt.Sprintf("Booked by %s", b.ManagerSurname))
		cal.Children = append(cal.Children, event.Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

func parseBookingTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

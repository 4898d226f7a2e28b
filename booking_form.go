package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/borgmon/room-booker/pkg/api"
	"github.com/borgmon/room-booker/pkg/calendar"
	"github.com/borgmon/room-booker/pkg/models"
)

// BookingForm captures room, date, time range and requester surname.
// With no edit target it submits a create; with one it submits a full
// replace of that booking.
type BookingForm struct {
	rb *RoomBooker

	room      models.Room
	editingID int // 0 means create mode

	dateEntry    *widget.Entry
	startEntry   *widget.Entry
	endEntry     *widget.Entry
	surnameEntry *widget.Entry
	submitButton *widget.Button

	dlg dialog.Dialog
}

func NewBookingForm(rb *RoomBooker) *BookingForm {
	return &BookingForm{rb: rb}
}

// OpenCreate opens the form for a fresh booking: today, 10:00 to 11:00,
// empty surname, any previous edit target cleared
func (bf *BookingForm) OpenCreate(room models.Room) {
	bf.room = room
	bf.editingID = 0
	bf.open(room.Name, calendar.Today(), "10:00", "11:00", "")
}

// OpenEdit opens the form pre-filled from an existing booking and
// remembers its id as the edit target
func (bf *BookingForm) OpenEdit(booking models.Booking) {
	room := models.RoomByID(booking.RoomID)
	if room == nil {
		showAlert(bf.rb.window, "This booking refers to a room this client does not know.")
		return
	}
	bf.room = *room
	bf.editingID = booking.ID
	bf.open(room.Name+" (editing)", booking.Date, booking.TimeStart, booking.TimeEnd, booking.ManagerSurname)
}

func (bf *BookingForm) open(title, date, start, end, surname string) {
	bf.dateEntry = widget.NewEntry()
	bf.dateEntry.SetPlaceHolder("YYYY-MM-DD")
	bf.dateEntry.SetText(date)

	bf.startEntry = widget.NewEntry()
	bf.startEntry.SetPlaceHolder("HH:MM")
	bf.startEntry.SetText(start)

	bf.endEntry = widget.NewEntry()
	bf.endEntry.SetPlaceHolder("HH:MM")
	bf.endEntry.SetText(end)

	bf.surnameEntry = widget.NewEntry()
	bf.surnameEntry.SetPlaceHolder("Surname")
	bf.surnameEntry.SetText(surname)

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Date"), bf.dateEntry,
		widget.NewLabel("From"), bf.startEntry,
		widget.NewLabel("To"), bf.endEntry,
		widget.NewLabel("Booked by"), bf.surnameEntry,
	)

	bf.submitButton = widget.NewButton("Book", func() { bf.submit() })
	bf.submitButton.Importance = widget.HighImportance
	if bf.editingID != 0 {
		bf.submitButton.SetText("Save")
	}
	cancelButton := widget.NewButton("Cancel", func() {
		bf.editingID = 0
		bf.dlg.Hide()
	})

	buttons := container.NewGridWithColumns(2, cancelButton, bf.submitButton)
	content := container.NewVBox(form, buttons)

	bf.dlg = dialog.NewCustomWithoutButtons(title, content, bf.rb.window)
	bf.dlg.Resize(fyne.NewSize(380, 320))
	bf.dlg.Show()
}

// submit validates locally, then dispatches create or update. On
// failure the form stays open and populated so the user can retry.
func (bf *BookingForm) submit() {
	req, err := buildBookingRequest(bf.room.ID, bf.dateEntry.Text, bf.startEntry.Text, bf.endEntry.Text, bf.surnameEntry.Text)
	if err != nil {
		showAlert(bf.rb.window, validationMessage(err))
		return
	}

	bf.submitButton.Disable()
	editingID := bf.editingID

	go func() {
		booking, err := submitBooking(context.Background(), bf.rb.api, editingID, req)
		fyne.Do(func() {
			if err != nil {
				bf.submitButton.Enable()
				showAlert(bf.rb.window, mutationMessage(err))
				return
			}

			logrus.WithFields(logrus.Fields{
				"booking": booking.ID,
				"room":    booking.RoomID,
				"date":    booking.Date,
			}).Info("Booking saved")

			bf.dlg.Hide()
			bf.editingID = 0
			if bf.rb.prefs.PlaySound {
				playConfirmSound()
			}

			message := fmt.Sprintf("Booked for %s", req.ManagerSurname)
			if editingID != 0 {
				message = "Booking updated"
			}
			showAlert(bf.rb.window, message)
			bf.rb.afterMutation()
		})
	}()
}

// bookingSubmitter is the slice of the API client the form dispatch needs
type bookingSubmitter interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id int, req models.BookingRequest) (*models.Booking, error)
}

// submitBooking routes to create or update depending on the edit target
func submitBooking(ctx context.Context, s bookingSubmitter, editingID int, req models.BookingRequest) (*models.Booking, error) {
	if editingID != 0 {
		return s.UpdateBooking(ctx, editingID, req)
	}
	return s.CreateBooking(ctx, req)
}

// buildBookingRequest assembles and validates a request from raw form
// input. Validation failures never reach the network.
func buildBookingRequest(roomID int, date, start, end, surname string) (models.BookingRequest, error) {
	req := models.BookingRequest{
		RoomID:         roomID,
		Date:           date,
		TimeStart:      start,
		TimeEnd:        end,
		ManagerSurname: surname,
	}
	if err := req.Validate(); err != nil {
		return models.BookingRequest{}, err
	}
	req.Normalize()
	return req, nil
}

// validationMessage turns a validation error into the message shown to
// the user
func validationMessage(err error) string {
	switch err {
	case models.ErrFillAllFields:
		return "Fill all fields."
	case models.ErrEndBeforeStart:
		return "End must be after start."
	case models.ErrSurnameTooShort:
		return "Surname too short: use at least 2 letters."
	default:
		return err.Error()
	}
}

// mutationMessage maps known server conflicts to friendlier wording,
// with a generic fallback for everything else
func mutationMessage(err error) string {
	switch api.Classify(err) {
	case api.ConflictSlotTaken:
		return "This room is already taken at that time. Pick another slot."
	case api.ConflictPastDate:
		return "Cannot book a room in the past. Pick another date."
	}
	if api.IsNetworkError(err) {
		return "No connection. Check your internet and try again."
	}
	return "Booking failed: " + err.Error()
}

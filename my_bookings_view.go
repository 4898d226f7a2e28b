package main

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/borgmon/room-booker/pkg/calendar"
	"github.com/borgmon/room-booker/pkg/models"
)

// MyBookingsView lists the caller's bookings with inline edit and
// delete actions
type MyBookingsView struct {
	rb *RoomBooker

	list        *fyne.Container
	statusLabel *widget.Label
	content     fyne.CanvasObject
}

func NewMyBookingsView(rb *RoomBooker) *MyBookingsView {
	mv := &MyBookingsView{rb: rb}

	mv.statusLabel = widget.NewLabel("")
	mv.statusLabel.Alignment = fyne.TextAlignCenter
	mv.statusLabel.Importance = widget.MediumImportance
	mv.statusLabel.Hide()

	mv.list = container.NewVBox()

	exportButton := widget.NewButtonWithIcon("Export .ics", theme.DocumentSaveIcon(), func() {
		mv.exportICS()
	})

	mv.content = container.NewBorder(
		container.NewVBox(mv.statusLabel, exportButton),
		nil, nil, nil,
		container.NewScroll(mv.list),
	)
	mv.Render()
	return mv
}

func (mv *MyBookingsView) Content() fyne.CanvasObject {
	return mv.content
}

// Render rebuilds the card list from the personal cache snapshot
func (mv *MyBookingsView) Render() {
	mv.statusLabel.Hide()
	mv.list.Objects = nil

	mine := mv.rb.store.Mine()
	if len(mine) == 0 {
		mv.statusLabel.SetText("You have no bookings yet")
		mv.statusLabel.Show()
		mv.list.Refresh()
		return
	}

	for _, b := range mine {
		b := b
		editButton := widget.NewButton("Edit", func() {
			// Reuses the already-fetched record, no extra round-trip
			mv.rb.bookingForm.OpenEdit(b)
		})
		deleteButton := widget.NewButton("Delete", func() {
			mv.confirmDelete(b)
		})
		deleteButton.Importance = widget.DangerImportance

		detail := strings.ReplaceAll(b.Date, "-", ".") + " • " + b.TimeStart + "–" + b.TimeEnd
		card := widget.NewCard(models.RoomName(b.RoomID), detail,
			container.NewVBox(
				widget.NewLabelWithStyle(b.ManagerSurname, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				container.NewGridWithColumns(2, editButton, deleteButton),
			))
		mv.list.Add(card)
	}
	mv.list.Refresh()
}

// SetLoadFailed shows an explicit failure state instead of a blank list
func (mv *MyBookingsView) SetLoadFailed(err error) {
	logrus.WithError(err).Error("Failed to load personal bookings")
	mv.list.Objects = nil
	mv.list.Refresh()
	mv.statusLabel.SetText("Failed to load your bookings. " + loadErrorHint(err))
	mv.statusLabel.Show()
}

// confirmDelete requires an explicit destructive confirmation before
// anything touches the network
func (mv *MyBookingsView) confirmDelete(booking models.Booking) {
	confirm := dialog.NewConfirm("Delete booking?", "This action cannot be undone.", func(confirmed bool) {
		mv.deleteBooking(confirmed, booking.ID)
	}, mv.rb.window)
	confirm.SetConfirmText("Delete")
	confirm.SetDismissText("Cancel")
	confirm.SetConfirmImportance(widget.DangerImportance)
	confirm.Show()
}

func (mv *MyBookingsView) deleteBooking(confirmed bool, id int) {
	go func() {
		deleted, err := performDelete(context.Background(), mv.rb.api, confirmed, id)
		fyne.Do(func() {
			if err != nil {
				showAlert(mv.rb.window, "Failed to delete booking: "+err.Error())
				return
			}
			if !deleted {
				return
			}
			logrus.WithField("booking", id).Info("Booking deleted")
			showAlert(mv.rb.window, "Booking deleted")
			mv.rb.afterDelete()
		})
	}()
}

// bookingDeleter is the slice of the API client the delete flow needs
type bookingDeleter interface {
	DeleteBooking(ctx context.Context, id int) error
}

// performDelete carries out the outcome of the confirmation dialog. A
// dismissed dialog deletes nothing and issues no network call.
func performDelete(ctx context.Context, d bookingDeleter, confirmed bool, id int) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := d.DeleteBooking(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// exportICS writes the personal bookings to an iCalendar file
func (mv *MyBookingsView) exportICS() {
	mine := mv.rb.store.Mine()
	if len(mine) == 0 {
		showAlert(mv.rb.window, "Nothing to export yet.")
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			showAlert(mv.rb.window, "Export failed: "+err.Error())
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		if err := calendar.WriteICS(writer, mine); err != nil {
			logrus.WithError(err).Error("Failed to export bookings")
			showAlert(mv.rb.window, "Export failed: "+err.Error())
			return
		}
		showAlert(mv.rb.window, "Bookings exported")
	}, mv.rb.window)
}

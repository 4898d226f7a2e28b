package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/room-booker/pkg/models"
)

// RoomsView lists the fixed set of rooms, each with a Book button that
// opens the booking form in create mode
type RoomsView struct {
	rb *RoomBooker
}

func NewRoomsView(rb *RoomBooker) *RoomsView {
	return &RoomsView{rb: rb}
}

func (rv *RoomsView) Content() fyne.CanvasObject {
	cards := container.NewVBox()
	for _, room := range models.Rooms {
		room := room
		book := widget.NewButton("Book", func() {
			rv.rb.bookingForm.OpenCreate(room)
		})
		book.Importance = widget.HighImportance
		cards.Add(widget.NewCard(room.Name, "Shared meeting room", book))
	}
	return container.NewScroll(container.NewPadded(cards))
}

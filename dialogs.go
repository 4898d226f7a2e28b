package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/borgmon/room-booker/pkg/api"
)

// showAlert is the blocking-message primitive of the app
func showAlert(win fyne.Window, message string) {
	dialog.ShowInformation("Room Booker", message, win)
}

// loadErrorHint gives the user something actionable next to a "failed
// to load" placeholder
func loadErrorHint(err error) string {
	if api.IsNetworkError(err) {
		return "No connection, check your internet."
	}
	return err.Error()
}

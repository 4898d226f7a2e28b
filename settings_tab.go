package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

func (rb *RoomBooker) buildSettingsTab() fyne.CanvasObject {
	autoStartCheck := widget.NewCheck("Launch at login", func(checked bool) {
		rb.prefs.AutoStart = checked
		savePrefs(rb.app, rb.prefs)
		if err := setupAutostart(checked); err != nil {
			logrus.WithError(err).Error("Failed to change autostart")
			showAlert(rb.window, "Failed to change the launch-at-login setting.")
		}
	})
	autoStartCheck.SetChecked(rb.prefs.AutoStart)

	soundCheck := widget.NewCheck("Play sound on booking confirmation", func(checked bool) {
		rb.prefs.PlaySound = checked
		savePrefs(rb.app, rb.prefs)
	})
	soundCheck.SetChecked(rb.prefs.PlaySound)

	serverLabel := widget.NewLabel(rb.cfg.Server.URL)
	serverLabel.Importance = widget.MediumImportance
	serverHelp := widget.NewLabel("Set the booking server in roombooker.yaml or via ROOMBOOKER_SERVER_URL.")
	serverHelp.Wrapping = fyne.TextWrapWord
	serverHelp.Importance = widget.MediumImportance

	tokenStatus := "configured"
	if rb.cfg.ResolveToken() == "" {
		tokenStatus = "not configured, the server will reject bookings"
	}
	tokenLabel := widget.NewLabel("Identity token: " + tokenStatus)
	tokenLabel.Importance = widget.MediumImportance

	return container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autoStartCheck,
		soundCheck,
		widget.NewSeparator(),
		widget.NewLabel("Booking server:"),
		serverLabel,
		serverHelp,
		tokenLabel,
	)
}

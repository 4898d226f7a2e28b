package main

import (
	"fyne.io/fyne/v2"
)

// Prefs are the per-user UI preferences, persisted through Fyne
// preferences. Deployment settings (server URL, token) live in
// pkg/config instead.
type Prefs struct {
	AutoStart bool
	PlaySound bool
}

func loadPrefs(app fyne.App) *Prefs {
	prefs := app.Preferences()
	return &Prefs{
		AutoStart: prefs.BoolWithFallback("auto_start", false),
		PlaySound: prefs.BoolWithFallback("play_sound", true),
	}
}

func savePrefs(app fyne.App, p *Prefs) {
	prefs := app.Preferences()
	prefs.SetBool("auto_start", p.AutoStart)
	prefs.SetBool("play_sound", p.PlaySound)
}

package main

import (
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
	"github.com/sirupsen/logrus"
)

func setupAutostart(enable bool) error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return err
	}

	app := &autostart.App{
		Name:        "room-booker",
		DisplayName: "Room Booker",
		Exec:        []string{execPath},
	}

	if enable {
		if !app.IsEnabled() {
			if err := app.Enable(); err != nil {
				return err
			}
			logrus.Info("Autostart enabled")
		}
	} else {
		if app.IsEnabled() {
			if err := app.Disable(); err != nil {
				return err
			}
			logrus.Info("Autostart disabled")
		}
	}

	return nil
}

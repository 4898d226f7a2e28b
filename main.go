package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/sirupsen/logrus"

	"github.com/borgmon/room-booker/pkg/api"
	"github.com/borgmon/room-booker/pkg/config"
	"github.com/borgmon/room-booker/pkg/store"
)

type RoomBooker struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config
	prefs  *Prefs
	api    *api.Client
	store  *store.BookingStore

	tabs           *container.AppTabs
	calendarView   *CalendarView
	myBookingsView *MyBookingsView
	bookingForm    *BookingForm
}

const (
	tabRooms      = "Rooms"
	tabCalendar   = "Calendar"
	tabMyBookings = "My bookings"
	tabSettings   = "Settings"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	rb := &RoomBooker{
		app: app.New(),
		cfg: cfg,
	}
	rb.prefs = loadPrefs(rb.app)
	rb.api = api.NewClient(cfg.Server.URL, cfg.Auth.Header, cfg.ResolveToken(), cfg.Server.Timeout)
	rb.store = store.NewBookingStore(rb.api)

	if err := setupAutostart(rb.prefs.AutoStart); err != nil {
		logrus.WithError(err).Warn("Failed to set up autostart")
	}

	rb.buildUI()
	rb.initialLoad()
	rb.window.ShowAndRun()
}

func (rb *RoomBooker) buildUI() {
	rb.window = rb.app.NewWindow("Room Booker")

	rb.bookingForm = NewBookingForm(rb)
	rb.calendarView = NewCalendarView(rb)
	rb.myBookingsView = NewMyBookingsView(rb)

	rb.tabs = container.NewAppTabs(
		container.NewTabItem(tabRooms, NewRoomsView(rb).Content()),
		container.NewTabItem(tabCalendar, rb.calendarView.Content()),
		container.NewTabItem(tabMyBookings, rb.myBookingsView.Content()),
		container.NewTabItem(tabSettings, rb.buildSettingsTab()),
	)
	rb.tabs.SetTabLocation(container.TabLocationBottom)

	// Switching to a data-bearing tab refreshes it from the server
	rb.tabs.OnSelected = func(item *container.TabItem) {
		switch item.Text {
		case tabCalendar:
			rb.refreshCalendar()
		case tabMyBookings:
			rb.refreshMyBookings()
		}
	}

	rb.window.SetContent(rb.tabs)
	rb.window.Resize(fyne.NewSize(480, 640))
	rb.window.CenterOnScreen()
}

// initialLoad populates the cache once on startup so the calendar is
// ready before the user gets there
func (rb *RoomBooker) initialLoad() {
	go func() {
		err := rb.store.ReloadAll(context.Background())
		fyne.Do(func() {
			if err != nil {
				rb.calendarView.SetLoadFailed(err)
				return
			}
			rb.calendarView.Render()
		})
	}()
}

func (rb *RoomBooker) refreshCalendar() {
	go func() {
		err := rb.store.ReloadAll(context.Background())
		fyne.Do(func() {
			if err != nil {
				rb.calendarView.SetLoadFailed(err)
				return
			}
			rb.calendarView.Render()
		})
	}()
}

func (rb *RoomBooker) refreshMyBookings() {
	go func() {
		err := rb.store.ReloadMine(context.Background())
		fyne.Do(func() {
			if err != nil {
				rb.myBookingsView.SetLoadFailed(err)
				return
			}
			rb.myBookingsView.Render()
		})
	}()
}

// myBookingsActive reports whether the personal list is the tab on
// screen, so inactive views are not refreshed needlessly
func (rb *RoomBooker) myBookingsActive() bool {
	return rb.tabs.Selected() != nil && rb.tabs.Selected().Text == tabMyBookings
}

// afterMutation brings the views back in sync with the server after a
// create or update: full cache reload, calendar re-render, and the
// personal list too when it is on screen
func (rb *RoomBooker) afterMutation() {
	rb.refreshCalendar()
	if rb.myBookingsActive() {
		rb.refreshMyBookings()
	}
}

// afterDelete reloads both collections unconditionally; the three views
// must agree after a destructive action
func (rb *RoomBooker) afterDelete() {
	rb.refreshCalendar()
	rb.refreshMyBookings()
}

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/borgmon/room-booker/pkg/models"
)

// Lister is the slice of the API client the store needs
type Lister interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListMyBookings(ctx context.Context) ([]models.Booking, error)
}

// BookingStore is the in-memory booking cache. Both collections are
// rebuilt wholesale on reload; there is no incremental merge. A failed
// reload leaves the previous contents intact.
type BookingStore struct {
	mu sync.RWMutex

	api Lister

	// Every booking known to the server
	all []models.Booking

	// The caller's own bookings, filtered server-side
	mine []models.Booking
}

// NewBookingStore creates a BookingStore backed by the given API client
func NewBookingStore(api Lister) *BookingStore {
	return &BookingStore{api: api}
}

// ReloadAll replaces the full collection from the server
func (bs *BookingStore) ReloadAll(ctx context.Context) error {
	bookings, err := bs.api.ListBookings(ctx)
	if err != nil {
		return err
	}

	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.all = bookings
	return nil
}

// ReloadMine replaces the caller's own bookings from the server
func (bs *BookingStore) ReloadMine(ctx context.Context) error {
	bookings, err := bs.api.ListMyBookings(ctx)
	if err != nil {
		return err
	}

	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.mine = bookings
	return nil
}

// All returns a snapshot of every cached booking
func (bs *BookingStore) All() []models.Booking {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return append([]models.Booking(nil), bs.all...)
}

// Mine returns a snapshot of the caller's cached bookings
func (bs *BookingStore) Mine() []models.Booking {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return append([]models.Booking(nil), bs.mine...)
}

// MineByID looks a booking up in the personal cache, avoiding an extra
// round-trip when the edit form opens
func (bs *BookingStore) MineByID(id int) (models.Booking, bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	for _, b := range bs.mine {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// ForDate returns the bookings on the given ISO date, sorted ascending
// by start time
func (bs *BookingStore) ForDate(date string) []models.Booking {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	result := []models.Booking{}
	for _, b := range bs.all {
		if b.Date == date {
			result = append(result, b)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TimeStart < result[j].TimeStart
	})
	return result
}

// DatesWithBookings returns the number of cached bookings per ISO date,
// for annotating calendar day cells
func (bs *BookingStore) DatesWithBookings() map[string]int {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	counts := make(map[string]int)
	for _, b := range bs.all {
		counts[b.Date]++
	}
	return counts
}

// Package devserver is an in-memory stand-in for the production booking
// backend, used for local development and tests. It implements the same
// five endpoints and the same conflict rules, but keeps everything in a
// map and treats the raw identity header value as the user identity.
// It is not the production service.
package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/borgmon/room-booker/pkg/models"
)

// Server holds the in-memory booking state
type Server struct {
	mu         sync.Mutex
	authHeader string
	nextID     int
	bookings   map[int]models.Booking

	// now is swappable so tests can pin the clock
	now func() time.Time
}

// New creates a dev server that reads identity from authHeader
func New(authHeader string) *Server {
	return &Server{
		authHeader: authHeader,
		nextID:     1,
		bookings:   make(map[int]models.Booking),
		now:        time.Now,
	}
}

// Router builds the gin engine with all booking routes under /api
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/bookings", s.listBookings)
	api.GET("/my-bookings", s.listMyBookings)
	api.POST("/bookings", s.createBooking)
	api.PUT("/bookings/:id", s.updateBooking)
	api.DELETE("/bookings/:id", s.deleteBooking)
	return r
}

func (s *Server) identity(c *gin.Context) string {
	return c.GetHeader(s.authHeader)
}

func (s *Server) listBookings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sortedLocked(func(models.Booking) bool { return true }))
}

func (s *Server) listMyBookings(c *gin.Context) {
	owner := s.identity(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sortedLocked(func(b models.Booking) bool { return b.OwnerID == owner }))
}

func (s *Server) createBooking(c *gin.Context) {
	owner := s.identity(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkBookableLocked(req, 0); err != nil {
		c.JSON(err.status, gin.H{"error": err.message})
		return
	}

	booking := models.Booking{
		ID:             s.nextID,
		RoomID:         req.RoomID,
		Date:           req.Date,
		TimeStart:      req.TimeStart,
		TimeEnd:        req.TimeEnd,
		ManagerSurname: req.ManagerSurname,
		UserName:       owner,
		OwnerID:        owner,
	}
	s.nextID++
	s.bookings[booking.ID] = booking
	c.JSON(http.StatusCreated, booking)
}

func (s *Server) updateBooking(c *gin.Context) {
	owner := s.identity(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The existence check, ownership check, conflict scan and write must
	// share one critical section, or a concurrent delete or create can
	// slip in between them.
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.bookings[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if existing.OwnerID != owner {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}

	if verr := s.checkBookableLocked(req, id); verr != nil {
		c.JSON(verr.status, gin.H{"error": verr.message})
		return
	}

	existing.RoomID = req.RoomID
	existing.Date = req.Date
	existing.TimeStart = req.TimeStart
	existing.TimeEnd = req.TimeEnd
	existing.ManagerSurname = req.ManagerSurname
	s.bookings[id] = existing
	c.JSON(http.StatusOK, existing)
}

func (s *Server) deleteBooking(c *gin.Context) {
	owner := s.identity(c)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.bookings[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if existing.OwnerID != owner {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}
	delete(s.bookings, id)
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

type bookingError struct {
	status  int
	message string
}

// checkBookableLocked enforces the rules the production backend reports
// as free-text errors: no bookings in the past, no overlapping slot in
// the same room on the same day. excludeID skips the booking being
// edited. Caller must hold the lock.
func (s *Server) checkBookableLocked(req models.BookingRequest, excludeID int) *bookingError {
	if req.Date == "" || req.TimeStart == "" || req.TimeEnd == "" || req.ManagerSurname == "" {
		return &bookingError{http.StatusBadRequest, "missing required fields"}
	}
	if req.TimeStart >= req.TimeEnd {
		return &bookingError{http.StatusBadRequest, "end time must be after start time"}
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return &bookingError{http.StatusBadRequest, "invalid date format"}
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if date.Before(today) {
		return &bookingError{http.StatusBadRequest, "cannot book a room in the past"}
	}

	for _, b := range s.bookings {
		if b.ID == excludeID || b.RoomID != req.RoomID || b.Date != req.Date {
			continue
		}
		if req.TimeStart < b.TimeEnd && req.TimeEnd > b.TimeStart {
			return &bookingError{http.StatusConflict, "this time slot is already taken"}
		}
	}
	return nil
}

// sortedLocked returns matching bookings ordered by date then start
// time. Caller must hold the lock.
func (s *Server) sortedLocked(match func(models.Booking) bool) []models.Booking {
	result := []models.Booking{}
	for _, b := range s.bookings {
		if match(b) {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].TimeStart != result[j].TimeStart {
			return result[i].TimeStart < result[j].TimeStart
		}
		return result[i].ID < result[j].ID
	})
	return result
}

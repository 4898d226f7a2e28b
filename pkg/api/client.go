package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/borgmon/room-booker/pkg/models"
)

// Client talks to the remote booking service. Every request carries the
// identity token in the configured header; an empty token is sent as an
// empty credential and left for the server to reject.
type Client struct {
	baseURL    string
	authHeader string
	token      string
	httpClient *http.Client

	// Extra default headers applied after the built-in ones, so callers
	// can override Content-Type or the identity header if they need to.
	ExtraHeaders http.Header
}

// NewClient creates a booking API client. baseURL is the API root
// without a trailing slash, e.g. "https://booking.example.com/api".
func NewClient(baseURL, authHeader, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authHeader: authHeader,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListBookings fetches every booking
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListMyBookings fetches the caller's bookings. The server performs the
// ownership filter based on the identity header.
func (c *Client) ListMyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits a new booking
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking replaces an existing booking wholesale; there are no
// partial patch semantics
func (c *Client) UpdateBooking(ctx context.Context, id int, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d", id), req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking removes a booking by id
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(c.authHeader, c.token)
	req.Header.Set("X-Request-Id", uuid.New().String())
	for key, values := range c.ExtraHeaders {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Error("API call failed without a response")
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	entry := logrus.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		entry.Warn("API call returned an error status")
		return &HTTPError{Status: resp.StatusCode, Message: extractErrorMessage(data)}
	}
	entry.Debug("API call completed")

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error
// response body, tolerating JSON, plain text, and bodies that are neither
func extractErrorMessage(data []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	text := strings.TrimSpace(string(data))
	if text == "" || !utf8.ValidString(text) || strings.HasPrefix(text, "{") {
		return ""
	}
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

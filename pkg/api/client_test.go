package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/borgmon/room-booker/pkg/api"
	"github.com/borgmon/room-booker/pkg/devserver"
	"github.com/borgmon/room-booker/pkg/models"
)

const authHeader = "X-Telegram-Initdata"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, token string) (*api.Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(devserver.New(authHeader).Router())
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL+"/api", authHeader, token, 5*time.Second), ts
}

func futureRequest() models.BookingRequest {
	return models.BookingRequest{
		RoomID:         1,
		Date:           "2030-01-01",
		TimeStart:      "10:00",
		TimeEnd:        "11:00",
		ManagerSurname: "IVANOV",
	}
}

func TestRequestHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth []string
	var hasAuth bool
	var contentType, requestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth, hasAuth = r.Header[http.CanonicalHeaderKey(authHeader)]
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-Id")
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL, authHeader, "token-123", 5*time.Second)
	if _, err := client.ListBookings(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if !hasAuth || len(gotAuth) != 1 || gotAuth[0] != "token-123" {
		t.Errorf("expected identity header token-123, got %v", gotAuth)
	}
	if contentType != "application/json" {
		t.Errorf("expected application/json content type, got %q", contentType)
	}
	if requestID == "" {
		t.Error("expected a request id on every call")
	}
}

func TestEmptyTokenStillSendsCredentialHeader(t *testing.T) {
	t.Parallel()

	var hasAuth bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header[http.CanonicalHeaderKey(authHeader)]
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL, authHeader, "", 5*time.Second)
	if _, err := client.ListBookings(context.Background()); err != nil {
		t.Fatalf("list must not fail client-side on a missing token: %v", err)
	}
	if !hasAuth {
		t.Error("expected an empty credential header, not an omitted one")
	}
}

func TestExtraHeadersOverrideDefaults(t *testing.T) {
	t.Parallel()

	var contentType, trace string
	var gotAuth []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		gotAuth = r.Header[http.CanonicalHeaderKey(authHeader)]
		trace = r.Header.Get("X-Trace")
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL, authHeader, "token-123", 5*time.Second)
	client.ExtraHeaders = http.Header{}
	client.ExtraHeaders.Set("Content-Type", "application/json; charset=utf-8")
	client.ExtraHeaders.Set(authHeader, "override-token")
	client.ExtraHeaders.Set("X-Trace", "trace-1")

	if _, err := client.ListBookings(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if contentType != "application/json; charset=utf-8" {
		t.Errorf("expected the content type override to win, got %q", contentType)
	}
	// The override must replace the default credential, not stack on it
	if len(gotAuth) != 1 || gotAuth[0] != "override-token" {
		t.Errorf("expected a single overridden identity header, got %v", gotAuth)
	}
	if trace != "trace-1" {
		t.Errorf("expected the extra header to be sent, got %q", trace)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json error field", http.StatusBadRequest, `{"error":"boom"}`, "boom"},
		{"json message field", http.StatusBadRequest, `{"message":"kaput"}`, "kaput"},
		{"plain text", http.StatusInternalServerError, "server exploded", "server exploded"},
		{"unhelpful json", http.StatusTeapot, `{"status":418}`, "HTTP error, status 418"},
		{"empty body", http.StatusBadGateway, "", "HTTP error, status 502"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			client := api.NewClient(ts.URL, authHeader, "t", 5*time.Second)
			_, err := client.ListBookings(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}

			var httpErr *api.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected an HTTPError, got %T: %v", err, err)
			}
			if httpErr.Status != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, httpErr.Status)
			}
			if httpErr.Error() != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, httpErr.Error())
			}
		})
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing is listening any more

	client := api.NewClient(ts.URL, authHeader, "t", 2*time.Second)
	_, err := client.ListBookings(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !api.IsNetworkError(err) {
		t.Errorf("expected a NetworkError, got %T: %v", err, err)
	}
}

func TestCreateAndListRoundTrip(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, "user-1")

	created, err := client.CreateBooking(context.Background(), futureRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected the server to assign an id")
	}
	if created.ManagerSurname != "IVANOV" {
		t.Errorf("expected the surname to round-trip, got %q", created.ManagerSurname)
	}
	if created.OwnerID != "user-1" {
		t.Errorf("expected ownership from the identity header, got %q", created.OwnerID)
	}

	all, err := client.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID {
		t.Errorf("expected the created booking in the list, got %+v", all)
	}
}

func TestMyBookingsFilteredByIdentity(t *testing.T) {
	t.Parallel()

	client, ts := newTestClient(t, "user-1")
	if _, err := client.CreateBooking(context.Background(), futureRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := client.ListMyBookings(context.Background())
	if err != nil {
		t.Fatalf("my-bookings failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected one personal booking, got %d", len(mine))
	}

	other := api.NewClient(ts.URL+"/api", authHeader, "user-2", 5*time.Second)
	theirs, err := other.ListMyBookings(context.Background())
	if err != nil {
		t.Fatalf("my-bookings failed: %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("expected the server-side ownership filter to hide other users' bookings, got %+v", theirs)
	}
}

func TestUpdateUsesPutAddressedByID(t *testing.T) {
	t.Parallel()

	var method, path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.Write([]byte(`{"id":42}`))
	}))
	defer ts.Close()

	client := api.NewClient(ts.URL, authHeader, "t", 5*time.Second)
	if _, err := client.UpdateBooking(context.Background(), 42, futureRequest()); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if method != http.MethodPut {
		t.Errorf("expected PUT, got %s", method)
	}
	if path != "/bookings/42" {
		t.Errorf("expected /bookings/42, got %s", path)
	}
}

func TestUpdateReplacesBooking(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, "user-1")
	created, err := client.CreateBooking(context.Background(), futureRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	req := futureRequest()
	req.TimeStart = "12:00"
	req.TimeEnd = "13:00"
	updated, err := client.UpdateBooking(context.Background(), created.ID, req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.TimeStart != "12:00" || updated.TimeEnd != "13:00" {
		t.Errorf("expected the new time range, got %s-%s", updated.TimeStart, updated.TimeEnd)
	}
}

func TestDeleteBooking(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, "user-1")
	created, err := client.CreateBooking(context.Background(), futureRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := client.DeleteBooking(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	all, err := client.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no bookings after delete, got %+v", all)
	}
}

func TestConflictClassification(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, "user-1")
	if _, err := client.CreateBooking(context.Background(), futureRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Overlapping slot in the same room on the same day
	overlap := futureRequest()
	overlap.TimeStart = "10:30"
	overlap.TimeEnd = "11:30"
	_, err := client.CreateBooking(context.Background(), overlap)
	if api.Classify(err) != api.ConflictSlotTaken {
		t.Errorf("expected a slot-taken conflict, got %v", err)
	}

	past := futureRequest()
	past.Date = "2000-01-01"
	_, err = client.CreateBooking(context.Background(), past)
	if api.Classify(err) != api.ConflictPastDate {
		t.Errorf("expected a past-date conflict, got %v", err)
	}
}

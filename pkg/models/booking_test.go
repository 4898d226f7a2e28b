package models

import (
	"testing"
)

func TestValidateFailsFastInOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		req     BookingRequest
		wantErr error
	}{
		{
			name:    "missing date",
			req:     BookingRequest{RoomID: 1, Date: "", TimeStart: "10:00", TimeEnd: "11:00", ManagerSurname: "Smith"},
			wantErr: ErrFillAllFields,
		},
		{
			name:    "missing surname",
			req:     BookingRequest{RoomID: 1, Date: "2025-01-01", TimeStart: "10:00", TimeEnd: "11:00", ManagerSurname: "   "},
			wantErr: ErrFillAllFields,
		},
		{
			name:    "inverted time range",
			req:     BookingRequest{RoomID: 1, Date: "2025-01-01", TimeStart: "11:00", TimeEnd: "10:00", ManagerSurname: "Smith"},
			wantErr: ErrEndBeforeStart,
		},
		{
			name:    "equal start and end",
			req:     BookingRequest{RoomID: 1, Date: "2025-01-01", TimeStart: "10:00", TimeEnd: "10:00", ManagerSurname: "Smith"},
			wantErr: ErrEndBeforeStart,
		},
		{
			name:    "surname too short",
			req:     BookingRequest{RoomID: 1, Date: "2025-01-01", TimeStart: "10:00", TimeEnd: "11:00", ManagerSurname: "S"},
			wantErr: ErrSurnameTooShort,
		},
		{
			name: "valid",
			req:  BookingRequest{RoomID: 1, Date: "2025-01-01", TimeStart: "10:00", TimeEnd: "11:00", ManagerSurname: "Smith"},
		},
		{
			// Missing fields win over the inverted range: fail-fast order
			name:    "missing field beats inverted range",
			req:     BookingRequest{RoomID: 1, Date: "", TimeStart: "11:00", TimeEnd: "10:00", ManagerSurname: "S"},
			wantErr: ErrFillAllFields,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.req.Validate(); err != tc.wantErr {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidationMessagesDistinct(t *testing.T) {
	t.Parallel()

	msgs := map[string]bool{
		ErrFillAllFields.Error():   true,
		ErrEndBeforeStart.Error():  true,
		ErrSurnameTooShort.Error(): true,
	}
	if len(msgs) != 3 {
		t.Errorf("expected three distinct validation messages, got %v", msgs)
	}
}

func TestNormalizeUppercasesSurname(t *testing.T) {
	t.Parallel()

	req := BookingRequest{ManagerSurname: "  ivanov "}
	req.Normalize()
	if req.ManagerSurname != "IVANOV" {
		t.Errorf("expected IVANOV, got %q", req.ManagerSurname)
	}
}

func TestRoomLookup(t *testing.T) {
	t.Parallel()

	if r := RoomByID(2); r == nil || r.Name != "SPB Office" {
		t.Errorf("expected SPB Office for id 2, got %+v", r)
	}
	if r := RoomByID(99); r != nil {
		t.Errorf("expected nil for unknown id, got %+v", r)
	}
	if name := RoomName(99); name != "Unknown room" {
		t.Errorf("expected placeholder name, got %q", name)
	}
}

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"mentor-booking-backend/models"
	"mentor-booking-backend/repository"
)

func futureISO() string {
	return time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
}

func TestBookingCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		pathID     string
		wantStatus int
		wantError  string
	}{
		{
			name: "valid flat payload",
			body: fmt.Sprintf(`{"userName":"Bob","userEmail":"bob@x.com","preferredDateTime":%q,"sessionId":"s1"}`,
				futureISO()),
			wantStatus: http.StatusCreated,
		},
		{
			name: "valid nested payload",
			body: fmt.Sprintf(`{"userName":"Bob","userEmail":"bob@x.com","preferredDateTime":%q}`,
				futureISO()),
			pathID:     "s1",
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       `{"userName":"Bob"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "userName, userEmail, preferredDateTime, and sessionId are required",
		},
		{
			name: "unknown session",
			body: fmt.Sprintf(`{"userName":"Bob","userEmail":"bob@x.com","preferredDateTime":%q,"sessionId":"ghost"}`,
				futureISO()),
			wantStatus: http.StatusNotFound,
			wantError:  "Session not found",
		},
		{
			name: "bad email",
			body: fmt.Sprintf(`{"userName":"Bob","userEmail":"a@b","preferredDateTime":%q,"sessionId":"s1"}`,
				futureISO()),
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid email format",
		},
		{
			name:       "unparseable date",
			body:       `{"userName":"Bob","userEmail":"bob@x.com","preferredDateTime":"whenever","sessionId":"s1"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid date format",
		},
		{
			name:       "past date",
			body:       `{"userName":"Bob","userEmail":"bob@x.com","preferredDateTime":"2020-01-01T00:00:00Z","sessionId":"s1"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Preferred date must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &mockSessionStore{
				findByIDFunc: func(id string) (*models.Session, error) {
					if id == "s1" {
						return &models.Session{ID: "s1"}, nil
					}
					return nil, repository.ErrNotFound
				},
			}
			h := NewBookingController(&mockBookingStore{}, sessions, zerolog.Nop())

			c, rec := newTestContext(t, http.MethodPost, "/api/bookings", tt.body)
			if tt.pathID != "" {
				c.SetParamNames("id")
				c.SetParamValues(tt.pathID)
			}

			if err := h.Create(c); err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantError != "" {
				var resp map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid JSON response: %v", err)
				}
				if resp["error"] != tt.wantError {
					t.Errorf("error = %q, want %q", resp["error"], tt.wantError)
				}
			}
		})
	}
}

func TestBookingCreatePathParamWinsOverBody(t *testing.T) {
	var created *models.Booking
	bookings := &mockBookingStore{
		createFunc: func(b *models.Booking) error {
			b.ID = "b1"
			created = b
			return nil
		},
	}
	h := NewBookingController(bookings, &mockSessionStore{}, zerolog.Nop())

	body := fmt.Sprintf(`{"userName":"Bob","userEmail":"bob@x.com","preferredDateTime":%q,"sessionId":"from-body"}`,
		futureISO())
	c, rec := newTestContext(t, http.MethodPost, "/api/sessions/from-path/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("from-path")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	if created == nil || created.SessionID != "from-path" {
		t.Errorf("session id = %+v, want from-path", created)
	}
}

func TestBookingCreateOptionalMessage(t *testing.T) {
	var created *models.Booking
	bookings := &mockBookingStore{
		createFunc: func(b *models.Booking) error {
			created = b
			return nil
		},
	}
	h := NewBookingController(bookings, &mockSessionStore{}, zerolog.Nop())

	body := fmt.Sprintf(`{"userName":"Bob","userEmail":"bob@x.com","preferredDateTime":%q,"sessionId":"s1"}`,
		futureISO())
	c, _ := newTestContext(t, http.MethodPost, "/api/bookings", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created == nil {
		t.Fatal("booking was not persisted")
	}
	if created.Message != nil {
		t.Errorf("message should default to absent, got %q", *created.Message)
	}
}

func TestBookingUpdateMessageOnlyLeavesOtherFieldsAlone(t *testing.T) {
	var got models.BookingUpdate
	bookings := &mockBookingStore{
		updateFunc: func(id string, upd models.BookingUpdate) (*models.Booking, error) {
			got = upd
			return &models.Booking{ID: id}, nil
		},
	}
	h := NewBookingController(bookings, &mockSessionStore{}, zerolog.Nop())
	c, rec := newTestContext(t, http.MethodPut, "/api/bookings/b1", `{"message":"hi"}`)
	c.SetParamNames("id")
	c.SetParamValues("b1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.Message == nil || *got.Message != "hi" {
		t.Errorf("message not forwarded: %+v", got)
	}
	if got.UserName != nil || got.UserEmail != nil || got.PreferredDateTime != nil {
		t.Errorf("unset fields leaked into update: %+v", got)
	}
}

func TestBookingUpdateRevalidatesPresentFields(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{name: "bad email", body: `{"userEmail":"a b@c.com"}`, wantError: "Invalid email format"},
		{name: "bad date", body: `{"preferredDateTime":"nope"}`, wantError: "Invalid date format"},
		{name: "past date", body: `{"preferredDateTime":"2019-05-05T10:00:00Z"}`, wantError: "Preferred date must be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBookingController(&mockBookingStore{}, &mockSessionStore{}, zerolog.Nop())
			c, rec := newTestContext(t, http.MethodPut, "/api/bookings/b1", tt.body)
			c.SetParamNames("id")
			c.SetParamValues("b1")

			if err := h.Update(c); err != nil {
				t.Fatalf("Update returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp["error"] != tt.wantError {
				t.Errorf("error = %q, want %q", resp["error"], tt.wantError)
			}
		})
	}
}

func TestBookingListBySessionDelegates(t *testing.T) {
	var queried string
	bookings := &mockBookingStore{
		findBySessionFunc: func(sessionID string) ([]models.Booking, error) {
			queried = sessionID
			return []models.Booking{{ID: "b1", SessionID: sessionID}}, nil
		},
	}
	h := NewBookingController(bookings, &mockSessionStore{}, zerolog.Nop())
	c, rec := newTestContext(t, http.MethodGet, "/api/bookings/session/s1", "")
	c.SetParamNames("sessionId")
	c.SetParamValues("s1")

	if err := h.ListBySession(c); err != nil {
		t.Fatalf("ListBySession returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if queried != "s1" {
		t.Errorf("queried session = %q, want s1", queried)
	}
}

func TestBookingListByUserDelegates(t *testing.T) {
	var queried string
	bookings := &mockBookingStore{
		findByUserFunc: func(userEmail string) ([]models.Booking, error) {
			queried = userEmail
			return []models.Booking{}, nil
		},
	}
	h := NewBookingController(bookings, &mockSessionStore{}, zerolog.Nop())
	c, rec := newTestContext(t, http.MethodGet, "/api/bookings/user/bob@x.com", "")
	c.SetParamNames("userEmail")
	c.SetParamValues("bob@x.com")

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if queried != "bob@x.com" {
		t.Errorf("queried email = %q, want bob@x.com", queried)
	}
}

func TestBookingDeleteNotFoundIsNot500(t *testing.T) {
	bookings := &mockBookingStore{deleteFunc: func(id string) error { return repository.ErrNotFound }}
	h := NewBookingController(bookings, &mockSessionStore{}, zerolog.Nop())
	c, rec := newTestContext(t, http.MethodDelete, "/api/bookings/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

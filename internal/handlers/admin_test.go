package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hwright/contactform/internal/domain"
	"github.com/hwright/contactform/internal/handlers"
)

func TestAdminMessages_RendersListing(t *testing.T) {
	repo := &fakeContactRepo{
		saved: []*domain.ContactMessage{
			{
				ID:        uuid.New(),
				Email:     "a@example.com",
				Name:      "Alice",
				Subject:   "Hi",
				Message:   "Hello",
				CreatedOn: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			},
			{
				ID:        uuid.New(),
				Email:     "b@example.com",
				Name:      "Bob",
				Subject:   "Question",
				Message:   "How do I...",
				CreatedOn: time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC),
			},
		},
	}
	h := handlers.NewAdminHandler(repo)

	e := newTestEcho()
	e.GET("/admin/messages", h.Messages)

	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "a@example.com")
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "Hi")
	assert.Contains(t, body, "2026-03-14 09:30:00")
	assert.Contains(t, body, "b@example.com")
}

func TestAdminMessages_EmptyListing(t *testing.T) {
	h := handlers.NewAdminHandler(&fakeContactRepo{})

	e := newTestEcho()
	e.GET("/admin/messages", h.Messages)

	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Contact form messages")
}

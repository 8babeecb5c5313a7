package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hwright/contactform/internal/dispatch"
	"github.com/hwright/contactform/internal/domain"
	"github.com/hwright/contactform/internal/view"
	"github.com/hwright/contactform/web/src/templates/layouts"
	"github.com/hwright/contactform/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
)

// ContactHandler handles the contact-form routes.
type ContactHandler struct {
	repo      domain.ContactRepository
	queue     dispatch.Queue
	recipient string
}

// NewContactHandler creates a ContactHandler. recipient is the operator
// address every notification email is sent to.
func NewContactHandler(repo domain.ContactRepository, queue dispatch.Queue, recipient string) *ContactHandler {
	return &ContactHandler{
		repo:      repo,
		queue:     queue,
		recipient: recipient,
	}
}

// ContactGet renders the contact form (GET /).
func (h *ContactHandler) ContactGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	pageContent := pages.Contact(pages.ContactData{})
	return renderHTML(c, http.StatusOK, layouts.Base("Contact", flashes, pageContent))
}

// ContactPost handles the form submission (POST /).
// On validation failure the form is re-rendered with field errors and the
// submitted values; nothing is persisted and nothing is enqueued.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	var req ContactFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	if err := c.Validate(&req); err != nil {
		data := pages.ContactData{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
			Errors:  fieldErrors(err),
		}
		pageContent := pages.Contact(data)
		return renderHTML(c, http.StatusUnprocessableEntity, layouts.Base("Contact", view.FlashData{}, pageContent))
	}

	msg := &domain.ContactMessage{
		Email:   req.Email,
		Name:    req.Name,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.repo.Save(c.Request().Context(), msg); err != nil {
		slog.Error("Failed to save contact message", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not save your message.")
	}

	// Fire-and-forget: the submitter's request never waits on, or learns
	// about, the delivery outcome.
	jobID, err := h.queue.Submit(c.Request().Context(), dispatch.SendRequest{
		To:      h.recipient,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		slog.Error("Failed to enqueue notification email", "message_id", msg.ID, "error", err)
	} else {
		slog.Info("Enqueued notification email", "message_id", msg.ID, "job_id", jobID)
	}

	view.SetFlashSuccess(c, "Thanks for your message! We'll get back to you soon.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderHTML writes a gomponents node as the HTML response.
func renderHTML(c echo.Context, status int, component cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(status)
	return component.Render(c.Response().Writer)
}

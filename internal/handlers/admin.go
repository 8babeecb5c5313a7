package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hwright/contactform/internal/domain"
	"github.com/hwright/contactform/internal/view"
	"github.com/hwright/contactform/web/src/templates/layouts"
	"github.com/hwright/contactform/web/src/templates/pages"
)

// AdminHandler serves the read-only operational view over stored messages.
type AdminHandler struct {
	repo domain.ContactRepository
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(repo domain.ContactRepository) *AdminHandler {
	return &AdminHandler{repo: repo}
}

// Messages handles GET /admin/messages.
// Supports query params: limit (1-200) and offset.
func (h *AdminHandler) Messages(c echo.Context) error {
	opts := domain.ContactListOptions{
		Limit:  50,
		Offset: 0,
	}

	if l := c.QueryParam("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			opts.Limit = n
		}
	}
	if o := c.QueryParam("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	messages, err := h.repo.List(c.Request().Context(), opts)
	if err != nil {
		slog.Error("Failed to list contact messages", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not load messages.")
	}

	pageContent := pages.AdminMessages(messages)
	return renderHTML(c, http.StatusOK, layouts.Base("Messages", view.GetFlashData(c), pageContent))
}

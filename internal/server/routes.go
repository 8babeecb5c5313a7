package server

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	appmiddleware "github.com/hwright/contactform/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := appmiddleware.RateLimiter()

	s.E.GET("/", s.contactHandler.ContactGet).Name = "contact_form"
	s.E.POST("/", s.contactHandler.ContactPost, rateLimiter).Name = "contact_form"

	admin := s.E.Group("/admin", middleware.BasicAuth(s.checkAdminCredentials))
	admin.GET("/messages", s.adminHandler.Messages)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})
}

// checkAdminCredentials validates basic-auth credentials for the admin
// listing. An empty configured password disables access entirely.
func (s *Server) checkAdminCredentials(user, pass string, c echo.Context) (bool, error) {
	if s.Cfg.AdminPass == "" {
		return false, nil
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.Cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.Cfg.AdminPass)) == 1
	return userOK && passOK, nil
}

package server

import (
	"context"
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hwright/contactform/internal/config"
	"github.com/hwright/contactform/internal/dispatch"
	"github.com/hwright/contactform/internal/email"
	"github.com/hwright/contactform/internal/handlers"
	"github.com/hwright/contactform/internal/pubsub"
	"github.com/hwright/contactform/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E          *echo.Echo
	Pool       *pgxpool.Pool
	Cfg        *config.Config
	Bridge     *pubsub.WatermillBridge
	Dispatcher *dispatch.Dispatcher

	contactHandler *handlers.ContactHandler
	adminHandler   *handlers.AdminHandler
}

// New creates a new Server instance with all dependencies wired.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	emailer, err := email.NewEmailService(cfg)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize email service: %w", err)
	}

	// The in-process queue decouples form submission from mail delivery.
	bridge := pubsub.NewWatermillBridge()
	queue := dispatch.NewQueue(bridge)
	dispatcher := dispatch.NewDispatcher(emailer, cfg.DefaultFromEmail, nil, dispatch.Options{})

	contactRepo := repository.NewPgContactRepository(pool)
	contactHandler := handlers.NewContactHandler(contactRepo, queue, cfg.ContactRecipient)
	adminHandler := handlers.NewAdminHandler(contactRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Validator = handlers.NewValidator()

	// Session middleware carries the post-submit flash message.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:              e,
		Pool:           pool,
		Cfg:            cfg,
		Bridge:         bridge,
		Dispatcher:     dispatcher,
		contactHandler: contactHandler,
		adminHandler:   adminHandler,
	}, nil
}

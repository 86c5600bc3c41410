// Package web serves the HTML surface of the task manager: landing page,
// signup/login forms, the task list and its mutation links. Handlers write
// through the injected services; there is no package-level state.
package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gotasks/internal/logging"
	"github.com/dmitrijs2005/gotasks/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	tasks     *services.TaskService
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ts *services.TaskService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *HTTPServer) newEcho() (*echo.Echo, error) {

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	// public pages
	e.GET("/", s.home)
	e.GET("/signup", s.showSignup)
	e.POST("/signup", s.signup)
	e.GET("/login", s.showLogin)
	e.POST("/login", s.login)

	// everything below needs a live session
	protected := e.Group("", s.requireUser)
	protected.GET("/todo", s.listTasks)
	protected.POST("/add", s.addTask)
	protected.GET("/update/:id", s.updateTask)
	protected.GET("/promote/:id", s.promoteTask)
	protected.GET("/demote/:id", s.demoteTask)
	protected.GET("/delete/:id", s.deleteTask)
	protected.GET("/logout", s.logout)

	return e, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	e, err := s.newEcho()
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := e.Shutdown(context.Background()); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// errorHandler renders the generic error page for anything no handler
// recovered locally (the HTML equivalent of the framework 500 page).
func (s *HTTPServer) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code == http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "request failed", "error", err.Error())
	}

	_ = c.Render(code, "error.html", errorPage{Code: code, Message: http.StatusText(code)})
}

package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/common"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
	"github.com/labstack/echo/v4"
)

// currentUserKey is the echo context key holding the resolved *models.User.
const currentUserKey = "currentUser"

// requireUser resolves the session cookie into a user and stores it in the
// request context. Anonymous and stale sessions are sent to the login page;
// a cookie that fails verification is cleared on the way.
func (s *HTTPServer) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		cookie, err := c.Cookie(common.SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusFound, "/login")
		}

		user, err := s.users.Resolve(c.Request().Context(), cookie.Value)
		if err != nil {
			s.clearSessionCookie(c)
			return c.Redirect(http.StatusFound, "/login")
		}

		c.Set(currentUserKey, user)
		return next(c)
	}
}

func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}

// requestLogger emits one structured log line per request.
func (s *HTTPServer) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			s.logger.Info(req.Context(), "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
			)

			return err
		}
	}
}

func (s *HTTPServer) setSessionCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *HTTPServer) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/common"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
	"github.com/labstack/echo/v4"
)

func (s *HTTPServer) home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}

func (s *HTTPServer) showSignup(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", signupPage{})
}

func (s *HTTPServer) signup(c echo.Context) error {

	userName := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, err := s.users.Register(c.Request().Context(), userName, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return c.Render(http.StatusBadRequest, "signup.html",
				signupPage{Error: "Username and password are required.", UserName: userName, Email: email})
		case errors.Is(err, common.ErrorAlreadyExists):
			return c.Render(http.StatusConflict, "signup.html",
				signupPage{Error: "This username is already taken.", UserName: userName, Email: email})
		default:
			return err
		}
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

func (s *HTTPServer) showLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

func (s *HTTPServer) login(c echo.Context) error {

	userName := c.FormValue("username")
	password := c.FormValue("password")
	remember := c.FormValue("remember") != ""

	token, expiresAt, err := s.users.Login(c.Request().Context(), userName, password, remember)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// recovered locally: inline message, no redirect
			return c.Render(http.StatusUnauthorized, "login.html",
				loginPage{Error: "Invalid username or password.", UserName: userName})
		}
		return err
	}

	s.setSessionCookie(c, token, expiresAt)
	return c.Redirect(http.StatusSeeOther, "/todo")
}

func (s *HTTPServer) logout(c echo.Context) error {

	if cookie, err := c.Cookie(common.SessionCookieName); err == nil {
		if err := s.users.Logout(c.Request().Context(), cookie.Value); err != nil {
			s.logger.Warn(c.Request().Context(), "logout failed", "error", err.Error())
		}
	}

	s.clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (s *HTTPServer) listTasks(c echo.Context) error {
	user := currentUser(c)

	list, err := s.tasks.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "tasks.html", s.tasksPageData(user, list, "", "", ""))
}

func (s *HTTPServer) addTask(c echo.Context) error {
	user := currentUser(c)

	title := c.FormValue("title")
	date := c.FormValue("date")

	_, err := s.tasks.Create(c.Request().Context(), user.ID, title, date)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			// re-render the list with the rejected input kept in the form
			list, listErr := s.tasks.List(c.Request().Context(), user.ID)
			if listErr != nil {
				return listErr
			}
			return c.Render(http.StatusBadRequest, "tasks.html",
				s.tasksPageData(user, list, "Enter a title and a due date in YYYY-MM-DD form.", title, date))
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/todo")
}

func (s *HTTPServer) updateTask(c echo.Context) error {
	return s.mutateTask(c, s.tasks.ToggleComplete)
}

func (s *HTTPServer) promoteTask(c echo.Context) error {
	return s.mutateTask(c, s.tasks.Promote)
}

func (s *HTTPServer) demoteTask(c echo.Context) error {
	return s.mutateTask(c, s.tasks.Demote)
}

func (s *HTTPServer) deleteTask(c echo.Context) error {
	return s.mutateTask(c, s.tasks.Delete)
}

// mutateTask runs one owner-scoped task mutation and redirects back to the
// list. Unparseable and unknown ids get a 404 page, and so does a task id
// owned by another user.
func (s *HTTPServer) mutateTask(c echo.Context, fn func(ctx context.Context, userID, taskID int64) error) error {

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	user := currentUser(c)

	if err := fn(c.Request().Context(), user.ID, taskID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/todo")
}

func (s *HTTPServer) tasksPageData(user *models.User, list []models.Task, errMsg, title, date string) tasksPage {

	views := make([]taskView, 0, len(list))
	for i := range list {
		t := &list[i]
		views = append(views, taskView{
			ID:       t.ID,
			Title:    t.Title,
			Complete: t.Complete,
			Priority: t.Priority,
			DueDate:  t.DueDateDisplay(),
		})
	}

	if date == "" && errMsg == "" {
		date = time.Now().Format(common.DueDateLayout)
	}

	return tasksPage{
		UserName: user.UserName,
		Tasks:    views,
		Error:    errMsg,
		Title:    title,
		Date:     date,
	}
}

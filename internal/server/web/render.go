package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer plugs the embedded html/template set into echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// page payloads

type signupPage struct {
	Error    string
	UserName string
	Email    string
}

type loginPage struct {
	Error    string
	UserName string
}

type tasksPage struct {
	UserName string
	Tasks    []taskView
	Error    string
	Title    string
	Date     string
}

type errorPage struct {
	Code    int
	Message string
}

// taskView is the template-facing shape of a task.
type taskView struct {
	ID       int64
	Title    string
	Complete bool
	Priority int
	DueDate  string
}

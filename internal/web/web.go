// Package web holds the embedded HTML templates and their renderer.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/UserHub/userhub-directory-services/models"
)

//go:embed templates/*.html
var FS embed.FS

// UsersPage is the data for the users listing template.
type UsersPage struct {
	Title string
	Users []models.User
}

// ErrorPage is the data for the generic error template. Detail is only set
// in development mode.
type ErrorPage struct {
	Title     string
	RequestID string
	Detail    string
}

// Renderer executes the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates once, up front.
func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// RenderUsers writes the users listing page, one table row per user in
// input order.
func (re *Renderer) RenderUsers(w io.Writer, users []models.User) error {
	return re.templates.ExecuteTemplate(w, "users.html", UsersPage{
		Title: "Users",
		Users: users,
	})
}

// RenderError writes the generic error page.
func (re *Renderer) RenderError(w io.Writer, page ErrorPage) error {
	if page.Title == "" {
		page.Title = "Error"
	}
	return re.templates.ExecuteTemplate(w, "error.html", page)
}

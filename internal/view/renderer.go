package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer serves the embedded HTML pages through echo's Renderer interface.
type Renderer struct {
	templates *template.Template
}

func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

package handler

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/fruito/storefront/internal/web"
)

// TemplateRenderer satisfies echo.Renderer over the embedded page templates.
// Templates are addressed by file base name, e.g. "shop.html".
type TemplateRenderer struct {
	templates *template.Template
}

func NewRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

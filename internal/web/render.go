package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/venuedesk/venuedesk/internal/web/middleware"
	"github.com/venuedesk/venuedesk/internal/web/nav"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pageNames lists every renderable page; each is parsed together
// with the shared layout and nav partials
var pageNames = []string{
	"home",
	"signin",
	"venues",
	"guest_dashboard",
	"host_dashboard",
	"admin_dashboard",
}

// PageData is the data handed to every page template
type PageData struct {
	Title string
	Nav   nav.View
	Flash *middleware.FlashMessage
	Data  any
}

// Renderer renders HTML pages from the embedded template set
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewRenderer parses the embedded templates
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS,
			"templates/layout.tmpl",
			"templates/nav.tmpl",
			"templates/"+name+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %q: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{
		pages:  pages,
		logger: logger.With(slog.String("component", "web-renderer")),
	}, nil
}

// Page renders a page with the given status code
func (r *Renderer) Page(w http.ResponseWriter, status int, name string, data PageData) {
	t, ok := r.pages[name]
	if !ok {
		r.logger.Error("unknown page template", slog.String("page", name))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		r.logger.Error("render page failed",
			slog.String("page", name),
			slog.String("error", err.Error()))
	}
}

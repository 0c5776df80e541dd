// Package views renders the blog's HTML pages from embedded templates.
package views

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/project-blog/internal/domain"
	"github.com/jsamuelsen/project-blog/internal/platform/telemetry"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageHome            = "home.html"
	PageProject         = "project.html"
	PageNotFound        = "not_found.html"
	PageError           = "error.html"
	PageProjectNotFound = "project_not_found.html"
)

// layoutPages are wrapped in the shared header and footer.
var layoutPages = []string{PageHome, PageProject, PageNotFound, PageError}

// standalonePages are rendered without the layout.
var standalonePages = []string{PageProjectNotFound}

// Site is the text of the shared chrome.
type Site struct {
	Title  string
	Footer string
}

// Page is the data handed to every template. Site is filled in by the
// engine.
type Page struct {
	Site      Site
	Heading   string
	Projects  []domain.Project
	Project   *domain.Project
	Path      string
	RequestID string
}

// Engine holds the parsed templates. It is immutable after New and safe
// for concurrent use.
type Engine struct {
	site       Site
	templates  map[string]*template.Template
	standalone map[string]*template.Template
}

// New parses every embedded template.
func New(site Site) (*Engine, error) {
	funcs := templateFuncs()

	engine := &Engine{
		site:       site,
		templates:  make(map[string]*template.Template, len(layoutPages)),
		standalone: make(map[string]*template.Template, len(standalonePages)),
	}

	for _, page := range layoutPages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		engine.templates[page] = t
	}

	for _, page := range standalonePages {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing standalone template %s: %w", page, err)
		}
		engine.standalone[page] = t
	}

	return engine, nil
}

// Site returns the chrome text the engine was built with.
func (e *Engine) Site() Site {
	return e.site
}

// Render executes the named page into memory so a failing template never
// produces a half-written response.
func (e *Engine) Render(ctx context.Context, name string, page Page) ([]byte, error) {
	_, span := telemetry.Tracer().Start(ctx, "views.Render",
		trace.WithAttributes(attribute.String("view.template", name)))
	defer span.End()

	page.Site = e.site

	var buf bytes.Buffer

	err := e.execute(&buf, name, page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *Engine) execute(buf *bytes.Buffer, name string, page Page) error {
	if t, ok := e.templates[name]; ok {
		if err := t.ExecuteTemplate(buf, "layout.html", page); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		return nil
	}

	if t, ok := e.standalone[name]; ok {
		if err := t.Execute(buf, page); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		return nil
	}

	return fmt.Errorf("template %q not found", name)
}

// Static returns the embedded assets rooted so that "css/site.css" is the
// stylesheet.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("views: static assets missing: %v", err))
	}
	return sub
}

// ProjectPath is the detail URL for a project id.
func ProjectPath(id string) string {
	return "/project/" + url.PathEscape(id)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"projectPath": ProjectPath,
		"description": Description,
	}
}

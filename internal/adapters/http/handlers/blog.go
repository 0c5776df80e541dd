package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/adapters/http/middleware"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/views"
	"github.com/jsamuelsen/project-blog/internal/domain"
	"github.com/jsamuelsen/project-blog/internal/platform/logging"
	"github.com/jsamuelsen/project-blog/internal/ports"
)

const htmlContentType = "text/html; charset=utf-8"

// pageRenderer is the subset of *views.Engine the blog handler needs.
type pageRenderer interface {
	Render(ctx context.Context, name string, page views.Page) ([]byte, error)
}

// BlogHandler serves the HTML pages: the project list, the project detail
// view and the not-found page.
type BlogHandler struct {
	projects ports.ProjectReader
	views    pageRenderer
	metrics  *Metrics
}

// NewBlogHandler creates a blog handler. metrics may be nil.
func NewBlogHandler(projects ports.ProjectReader, engine pageRenderer, metrics *Metrics) *BlogHandler {
	return &BlogHandler{
		projects: projects,
		views:    engine,
		metrics:  metrics,
	}
}

// Home handles GET /: one card per project, in store order.
func (h *BlogHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, ViewHome, views.PageHome, views.Page{
		Projects: h.projects.ListProjects(c.Request.Context()),
	})
}

// Project handles GET /project/:id. An unknown id renders the bare
// "Project not found" page with a 404.
func (h *BlogHandler) Project(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	project, err := h.projects.GetProject(ctx, id)
	switch {
	case domain.IsNotFound(err):
		logging.FromContext(ctx).DebugContext(ctx, "project not found", slog.String("project_id", id))
		h.render(c, http.StatusNotFound, ViewProjectNotFound, views.PageProjectNotFound, views.Page{})
	case err != nil:
		h.renderError(c, err)
	default:
		h.metrics.observeProject(project.ID)
		h.render(c, http.StatusOK, ViewProject, views.PageProject, views.Page{
			Heading: project.Title,
			Project: project,
		})
	}
}

// NotFound renders the generic 404 page for paths no route matches.
func (h *BlogHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, ViewNotFound, views.PageNotFound, views.Page{
		Heading: "Page not found",
		Path:    c.Request.URL.Path,
	})
}

// ServerError serves the error page with a 500. The caller has already
// logged the cause.
func (h *BlogHandler) ServerError(c *gin.Context) {
	h.serveErrorPage(c)
}

// RegisterBlogRoutes registers the HTML routes on rg.
func (h *BlogHandler) RegisterBlogRoutes(rg gin.IRoutes) {
	rg.GET("/", h.Home)
	rg.GET("/project/:id", h.Project)
}

func (h *BlogHandler) render(c *gin.Context, status int, view, name string, page views.Page) {
	start := time.Now()

	body, err := h.views.Render(c.Request.Context(), name, page)
	if err != nil {
		h.metrics.observeRenderError(view)
		h.renderError(c, err)
		return
	}

	h.metrics.observeView(view, time.Since(start).Seconds())
	c.Data(status, htmlContentType, body)
}

// renderError serves the error page. If that fails too the client gets
// plain text.
func (h *BlogHandler) renderError(c *gin.Context, cause error) {
	ctx := c.Request.Context()

	logging.FromContext(ctx).ErrorContext(ctx, "serving page failed",
		slog.String("error", cause.Error()),
		slog.String("path", c.Request.URL.Path),
	)

	h.serveErrorPage(c)
}

func (h *BlogHandler) serveErrorPage(c *gin.Context) {
	body, err := h.views.Render(c.Request.Context(), views.PageError, views.Page{
		Heading:   "Error",
		RequestID: middleware.GetRequestID(c),
	})
	if err != nil {
		h.metrics.observeRenderError(ViewError)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	h.metrics.observeView(ViewError, 0)
	c.Data(http.StatusInternalServerError, htmlContentType, body)
}

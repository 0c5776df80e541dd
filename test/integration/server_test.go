//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/project-blog/internal/adapters/content"
	bloghttp "github.com/jsamuelsen/project-blog/internal/adapters/http"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/handlers"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/views"
	"github.com/jsamuelsen/project-blog/internal/app"
	"github.com/jsamuelsen/project-blog/internal/domain"
	"github.com/jsamuelsen/project-blog/internal/platform/config"
	"github.com/jsamuelsen/project-blog/internal/ports"
)

// fixtureProjects is the store the in-process server serves.
var fixtureProjects = []domain.Project{
	{
		ID:          "a",
		Title:       "A",
		Date:        "Jan 1",
		Description: "line1\nline2",
		Tags:        []string{"x"},
	},
	{
		ID:          "langchain-rag",
		Title:       "Retrieval Augmented Chat",
		Date:        "March 3, 2025",
		Description: "Answers questions over a document set.",
		Tags:        []string{"LangChain", "RAG", "Python"},
	},
}

// startServer runs the full router over records on an httptest server.
func startServer(records []domain.Project) (*httptest.Server, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := content.New(records)
	if err != nil {
		return nil, err
	}

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		return nil, err
	}

	service := app.NewProjectService(app.ProjectServiceConfig{Store: store, Logger: logger})

	engine, err := views.New(views.Site{Title: config.DefaultSiteTitle, Footer: config.DefaultSiteFooter})
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	buildInfo := handlers.NewBuildInfo("integration", "none", time.Now().UTC().Format(time.RFC3339))
	buildInfo.Projects = store.Len()

	router := gin.New()
	bloghttp.SetupRouter(router, bloghttp.RouterConfig{
		Logger:         logger,
		ServiceName:    "project-blog-integration",
		RequestTimeout: 5 * time.Second,
		CORS:           config.CORSConfig{AllowedOrigins: []string{"*"}, MaxAge: time.Hour},
		Blog:           handlers.NewBlogHandler(service, engine, handlers.NewMetrics(reg)),
		Projects:       handlers.NewProjectsHandler(service),
		Health:         handlers.NewHealthHandler(registry, buildInfo, reg),
	})

	return httptest.NewServer(router), nil
}

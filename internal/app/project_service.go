// Package app contains the blog's use cases. It depends on ports only; the
// HTTP adapter calls into it for both the HTML views and the JSON API.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/project-blog/internal/domain"
	"github.com/jsamuelsen/project-blog/internal/platform/logging"
	"github.com/jsamuelsen/project-blog/internal/ports"
)

// ProjectService serves project listings and lookups.
type ProjectService struct {
	store  ports.ProjectStore
	logger *slog.Logger
}

var _ ports.ProjectReader = (*ProjectService)(nil)

// ProjectServiceConfig contains the dependencies of ProjectService.
type ProjectServiceConfig struct {
	Store  ports.ProjectStore
	Logger *slog.Logger
}

// NewProjectService creates a ProjectService. It panics if no store is
// given, since that is a wiring bug rather than a runtime condition.
func NewProjectService(cfg ProjectServiceConfig) *ProjectService {
	if cfg.Store == nil {
		panic("app: ProjectService requires a Store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ProjectService{
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.ProjectService")),
	}
}

// ListProjects returns every project in display order.
func (s *ProjectService) ListProjects(ctx context.Context) []domain.Project {
	projects := s.store.All(ctx)

	s.log(ctx).DebugContext(ctx, "listed projects", slog.Int("count", len(projects)))

	return projects
}

// GetProject returns the project with the given id, or a
// domain.NotFoundError when there is none. A missing project is an
// ordinary outcome and is logged at debug level only.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	project, ok := s.store.FindByID(ctx, id)
	if !ok {
		s.log(ctx).DebugContext(ctx, "project not found", slog.String("project_id", id))
		return nil, domain.NewNotFoundError(domain.EntityProject, id)
	}

	return &project, nil
}

// log prefers the request-scoped logger so request ids are attached.
func (s *ProjectService) log(ctx context.Context) *slog.Logger {
	if l, ok := logging.LoggerFromContext(ctx); ok {
		return l.With(slog.String("component", "app.ProjectService"))
	}

	return s.logger
}

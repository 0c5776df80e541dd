// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; the app package never imports an adapter.
package ports

import (
	"context"

	"github.com/jsamuelsen/project-blog/internal/domain"
)

// ProjectStore exposes the blog's fixed, ordered set of projects.
//
// Implementations are read-only after construction and safe for
// concurrent use.
type ProjectStore interface {
	// All returns every project in display order. The returned slice is
	// owned by the caller.
	All(ctx context.Context) []domain.Project

	// FindByID returns the project with the given ID.
	// The boolean is false when no project has that ID; this is an
	// expected outcome, not an error.
	FindByID(ctx context.Context, id string) (domain.Project, bool)
}

// ProjectReader is the application-level read API used by the HTTP
// adapters. GetProject reports an absent id as a domain.NotFoundError.
type ProjectReader interface {
	ListProjects(ctx context.Context) []domain.Project
	GetProject(ctx context.Context, id string) (*domain.Project, error)
}

package dto

import (
	"net/url"

	"github.com/jsamuelsen/project-blog/internal/domain"
)

// ProjectResponse is a project as served by the JSON API.
type ProjectResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`

	// URL is the path of the project's HTML page.
	URL string `json:"url"`
}

// ProjectIDRequest binds the {id} path parameter.
type ProjectIDRequest struct {
	ID string `uri:"id" json:"id" validate:"notempty,max=200"`
}

// ProjectFromDomain converts a domain project.
func ProjectFromDomain(p *domain.Project) ProjectResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Date:        p.Date,
		Description: p.Description,
		Tags:        tags,
		URL:         "/project/" + url.PathEscape(p.ID),
	}
}

// ProjectsFromDomain converts projects, preserving order.
func ProjectsFromDomain(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ProjectFromDomain(&projects[i])
	}

	return out
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/adapters/http/dto"
	"github.com/jsamuelsen/project-blog/internal/ports"
)

// ProjectsHandler serves the read-only JSON API.
type ProjectsHandler struct {
	projects ports.ProjectReader
}

// NewProjectsHandler creates a projects API handler.
func NewProjectsHandler(projects ports.ProjectReader) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// ListProjects handles GET /api/v1/projects.
//
// @Summary List projects
// @Tags projects
// @Produce json
// @Param limit query int false "Page size (1-100, default 20)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} dto.PaginatedResponse[dto.ProjectResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		if errors.Is(err, dto.ErrInvalidCursor) {
			dto.HandleErrorCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
			return
		}
		dto.HandleBindingError(c, err)
		return
	}

	all := dto.ProjectsFromDomain(h.projects.ListProjects(c.Request.Context()))

	page, err := dto.Paginate(all, &req, func(p dto.ProjectResponse) string { return p.ID })
	if errors.Is(err, dto.ErrInvalidCursor) {
		dto.HandleErrorCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
		return
	}
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetProject handles GET /api/v1/projects/:id.
//
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/projects/{id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	var req dto.ProjectIDRequest
	if err := dto.BindURIAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	project, err := h.projects.GetProject(c.Request.Context(), req.ID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectFromDomain(project))
}

// RegisterProjectRoutes registers the API routes on rg.
func (h *ProjectsHandler) RegisterProjectRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.GET("", h.ListProjects)
	projects.GET("/:id", h.GetProject)
}

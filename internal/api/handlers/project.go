package handlers

import (
	"net/http"
	"strconv"

	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/portfolio"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProjectSource lists portfolio projects.
type ProjectSource interface {
	List() ([]portfolio.Project, error)
	Get(id int) (portfolio.Project, error)
}

type ProjectHandler struct {
	projects ProjectSource
}

func NewProjectHandler(projects ProjectSource) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
	}
}

// List returns all projects with their count.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgProjectsFailed)
		return
	}

	utils.HandleList(c, projects, len(projects))
}

// Get returns one project. Ids that are not plain decimal digits are treated
// as unknown.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseProjectID(c.Param("id"))
	if !ok {
		utils.HandleError(c, http.StatusNotFound, common.MsgProjectNotFound)
		return
	}

	project, err := h.projects.Get(id)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgProjectsFailed)
		return
	}

	utils.HandleSuccess(c, project)
}

// parseProjectID accepts only ASCII digits, so "+1" and "-0" never alias a
// real project.
func parseProjectID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

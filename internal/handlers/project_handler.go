package handlers

import (
	"net/http"

	"scholar_backend/internal/models"
	"scholar_backend/internal/services"
	"scholar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

// RegisterRoutes wires the project CRUD and the description
// sub-resource. The :id segment carries the owner email on the list
// route and the numeric project id everywhere else; gin requires one
// name per position.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("/:id", h.List)
		projects.POST("", h.Create)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
		projects.GET("/:id/description", h.GetDescription)
		projects.PUT("/:id/description", h.UpdateDescription)
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	ownerEmail := c.Param("id")
	db := h.GetDB(c)

	projects, err := h.projectService.List(db, ownerEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	db := h.GetDB(c)

	created, err := h.projectService.Create(db, &project)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	db := h.GetDB(c)

	count, err := h.projectService.Update(db, id, &project)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	count, err := h.projectService.Delete(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

func (h *ProjectHandler) GetDescription(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	desc, err := h.projectService.GetDescription(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, desc)
}

func (h *ProjectHandler) UpdateDescription(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var payload dto.DescriptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	db := h.GetDB(c)

	count, fresh, err := h.projectService.UpdateDescription(db, id, &payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"updated":     count,
		"description": fresh,
	})
}

package handlers

import (
	"net/http"

	"scholar_backend/internal/models"
	"scholar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	*BaseHandler
	careerService services.CareerService
}

func NewCareerHandler(base *BaseHandler, careerService services.CareerService) *CareerHandler {
	return &CareerHandler{
		BaseHandler:   base,
		careerService: careerService,
	}
}

// RegisterRoutes wires career goals and their stage history. The :id
// segment carries the owner email on the list route and the numeric
// goal id on the nested routes; gin requires one name per position.
func (h *CareerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	goals := rg.Group("/career_goals")
	{
		goals.GET("/:id", h.ListGoals)
		goals.POST("", h.CreateGoal)
		goals.PUT("/:id", h.UpdateGoal)
		goals.DELETE("/:id", h.DeleteGoal)

		goals.GET("/:id/history", h.ListHistory)
		goals.POST("/:id/history", h.AddHistory)
		goals.DELETE("/:id/history/:historyId", h.DeleteHistory)
	}

	// Read-only legacy alias.
	rg.GET("/career/:id", h.ListGoals)
}

func (h *CareerHandler) ListGoals(c *gin.Context) {
	userEmail := c.Param("id")

	goals, err := h.careerService.ListGoals(h.GetDB(c), userEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *CareerHandler) CreateGoal(c *gin.Context) {
	var goal models.CareerGoal
	if err := c.ShouldBindJSON(&goal); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	created, err := h.careerService.CreateGoal(h.GetDB(c), &goal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *CareerHandler) UpdateGoal(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var goal models.CareerGoal
	if err := c.ShouldBindJSON(&goal); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	count, err := h.careerService.UpdateGoal(h.GetDB(c), id, &goal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *CareerHandler) DeleteGoal(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	count, err := h.careerService.DeleteGoal(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

func (h *CareerHandler) ListHistory(c *gin.Context) {
	goalID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	history, err := h.careerService.ListHistory(h.GetDB(c), goalID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *CareerHandler) AddHistory(c *gin.Context) {
	goalID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var entry models.StageHistory
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}
	entry.GoalID = goalID

	created, err := h.careerService.AddHistory(h.GetDB(c), &entry)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *CareerHandler) DeleteHistory(c *gin.Context) {
	goalID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	historyID, ok := h.ParseID(c, "historyId")
	if !ok {
		return
	}

	count, err := h.careerService.DeleteHistory(h.GetDB(c), goalID, historyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

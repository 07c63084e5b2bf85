package handlers

import (
	"net/http"

	"scholar_backend/internal/models"
	"scholar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PlannerHandler serves ideas, notes, future work, deadlines and
// meetings. All five share the same CRUD shape: list by owner key,
// create with presence checks and defaults, full-replace update,
// physical delete.
type PlannerHandler struct {
	*BaseHandler
	plannerService services.PlannerService
}

func NewPlannerHandler(base *BaseHandler, plannerService services.PlannerService) *PlannerHandler {
	return &PlannerHandler{
		BaseHandler:    base,
		plannerService: plannerService,
	}
}

func (h *PlannerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ideas := rg.Group("/ideas")
	{
		ideas.GET("/:email", h.ListIdeas)
		ideas.POST("", h.CreateIdea)
		ideas.PUT("/:email", h.UpdateIdea)
		ideas.DELETE("/:email", h.DeleteIdea)
	}

	notes := rg.Group("/notes")
	{
		notes.GET("/:email", h.ListNotes)
		notes.POST("", h.CreateNote)
		notes.PUT("/:email", h.UpdateNote)
		notes.DELETE("/:email", h.DeleteNote)
	}

	futureWork := rg.Group("/future_work")
	{
		futureWork.GET("/:email", h.ListFutureWork)
		futureWork.POST("", h.CreateFutureWork)
		futureWork.PUT("/:email", h.UpdateFutureWork)
		futureWork.DELETE("/:email", h.DeleteFutureWork)
	}
	// Read-only legacy alias.
	rg.GET("/future/:email", h.ListFutureWork)

	deadlines := rg.Group("/deadlines")
	{
		deadlines.GET("/:email", h.ListDeadlines)
		deadlines.POST("", h.CreateDeadline)
		deadlines.PUT("/:email", h.UpdateDeadline)
		deadlines.DELETE("/:email", h.DeleteDeadline)
	}

	meetings := rg.Group("/meetings")
	{
		meetings.GET("/:email", h.ListMeetings)
		meetings.POST("", h.CreateMeeting)
		meetings.PUT("/:email", h.UpdateMeeting)
		meetings.DELETE("/:email", h.DeleteMeeting)
	}
}

// --- Ideas ---

func (h *PlannerHandler) ListIdeas(c *gin.Context) {
	ideas, err := h.plannerService.ListIdeas(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ideas)
}

func (h *PlannerHandler) CreateIdea(c *gin.Context) {
	var idea models.Idea
	if err := c.ShouldBindJSON(&idea); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	created, err := h.plannerService.CreateIdea(h.GetDB(c), &idea)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *PlannerHandler) UpdateIdea(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	var idea models.Idea
	if err := c.ShouldBindJSON(&idea); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	count, err := h.plannerService.UpdateIdea(h.GetDB(c), id, &idea)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *PlannerHandler) DeleteIdea(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	count, err := h.plannerService.DeleteIdea(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

// --- Notes ---

func (h *PlannerHandler) ListNotes(c *gin.Context) {
	notes, err := h.plannerService.ListNotes(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *PlannerHandler) CreateNote(c *gin.Context) {
	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	created, err := h.plannerService.CreateNote(h.GetDB(c), &note)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *PlannerHandler) UpdateNote(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	count, err := h.plannerService.UpdateNote(h.GetDB(c), id, &note)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *PlannerHandler) DeleteNote(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	count, err := h.plannerService.DeleteNote(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

// --- Future work ---

func (h *PlannerHandler) ListFutureWork(c *gin.Context) {
	items, err := h.plannerService.ListFutureWork(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *PlannerHandler) CreateFutureWork(c *gin.Context) {
	var item models.FutureWork
	if err := c.ShouldBindJSON(&item); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	created, err := h.plannerService.CreateFutureWork(h.GetDB(c), &item)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *PlannerHandler) UpdateFutureWork(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	var item models.FutureWork
	if err := c.ShouldBindJSON(&item); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	count, err := h.plannerService.UpdateFutureWork(h.GetDB(c), id, &item)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *PlannerHandler) DeleteFutureWork(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	count, err := h.plannerService.DeleteFutureWork(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

// --- Deadlines ---

func (h *PlannerHandler) ListDeadlines(c *gin.Context) {
	deadlines, err := h.plannerService.ListDeadlines(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deadlines)
}

func (h *PlannerHandler) CreateDeadline(c *gin.Context) {
	var deadline models.Deadline
	if err := c.ShouldBindJSON(&deadline); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	created, err := h.plannerService.CreateDeadline(h.GetDB(c), &deadline)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *PlannerHandler) UpdateDeadline(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	var deadline models.Deadline
	if err := c.ShouldBindJSON(&deadline); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	count, err := h.plannerService.UpdateDeadline(h.GetDB(c), id, &deadline)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *PlannerHandler) DeleteDeadline(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	count, err := h.plannerService.DeleteDeadline(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

// --- Meetings ---

func (h *PlannerHandler) ListMeetings(c *gin.Context) {
	meetings, err := h.plannerService.ListMeetings(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *PlannerHandler) CreateMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := c.ShouldBindJSON(&meeting); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	created, err := h.plannerService.CreateMeeting(h.GetDB(c), &meeting)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *PlannerHandler) UpdateMeeting(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	var meeting models.Meeting
	if err := c.ShouldBindJSON(&meeting); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	count, err := h.plannerService.UpdateMeeting(h.GetDB(c), id, &meeting)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *PlannerHandler) DeleteMeeting(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	count, err := h.plannerService.DeleteMeeting(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

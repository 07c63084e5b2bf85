package handlers

import (
	"net/http"

	"scholar_backend/internal/models"
	"scholar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	*BaseHandler
	calendarService services.CalendarService
}

func NewCalendarHandler(base *BaseHandler, calendarService services.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		BaseHandler:     base,
		calendarService: calendarService,
	}
}

// RegisterRoutes wires /events and the /calendar_events alias older
// clients still use. Both expose the full CRUD surface.
func (h *CalendarHandler) RegisterRoutes(rg *gin.RouterGroup) {
	for _, prefix := range []string{"/events", "/calendar_events"} {
		events := rg.Group(prefix)
		{
			events.GET("/:email", h.List)
			events.POST("", h.Create)
			events.PUT("/:email", h.Update)
			events.DELETE("/:email", h.Delete)
		}
	}
}

func (h *CalendarHandler) List(c *gin.Context) {
	events, err := h.calendarService.List(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *CalendarHandler) Create(c *gin.Context) {
	var event models.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	created, err := h.calendarService.Create(h.GetDB(c), &event)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *CalendarHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	var event models.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.HandleServiceError(c, bindError(err))
		return
	}

	count, err := h.calendarService.Update(h.GetDB(c), id, &event)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Updated(c, count)
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "email")
	if !ok {
		return
	}

	count, err := h.calendarService.Delete(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

package handlers

import (
	"net/http"

	"scholar_backend/internal/services"
	"scholar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile/:email", h.Get)
	rg.POST("/profile", h.Upsert)
	rg.DELETE("/profile/:email", h.Delete)

	rg.GET("/generate-resume/:email", h.GenerateResume)
}

// Get returns the profile, or JSON null when none exists. Absence is
// not an error.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req dto.ProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.Upsert(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	count, err := h.profileService.Delete(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Deleted(c, count)
}

// GenerateResume returns text/html, not JSON. A missing profile still
// renders a page: the not-found fallback document.
func (h *ProfileHandler) GenerateResume(c *gin.Context) {
	html, err := h.profileService.GenerateResume(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

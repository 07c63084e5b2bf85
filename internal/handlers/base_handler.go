package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"scholar_backend/internal/logger"
	"scholar_backend/internal/validator"
	"scholar_backend/pkg/apperrors"
	"scholar_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB extracts the *gorm.DB handle (pool or test transaction) the
// DBMiddleware stored in the gin context. A missing key means the
// application is miswired, which justifies the panic.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

// BindAndValidate_JSON binds the JSON body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewBadRequestError(vErr.Error()))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ParseID reads a numeric path parameter. On failure it writes the 400
// response and returns false.
func (h *BaseHandler) ParseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	// Bit size 32 so an out-of-range id is rejected instead of wrapping
	// on 32-bit builds.
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}

// bindError wraps a JSON binding failure as a 400.
func bindError(err error) *apperrors.AppError {
	return apperrors.NewBadRequestError("Invalid request body: " + err.Error())
}

// HandleServiceError maps a service error onto the uniform JSON error
// body.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// Updated writes the affected-row count for an update.
func (h *BaseHandler) Updated(c *gin.Context, count int64) {
	c.JSON(http.StatusOK, gin.H{"updated": count})
}

// Deleted writes the affected-row count for a delete.
func (h *BaseHandler) Deleted(c *gin.Context, count int64) {
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"scholar_backend/internal/config"
	"scholar_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. The API lives at the root
// path; anything unmatched falls through to the static/SPA handler.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, cfg *config.Config) {
	api := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api)
		appHandlers.PlannerHandler.RegisterRoutes(api)
		appHandlers.CareerHandler.RegisterRoutes(api)
		appHandlers.CalendarHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.HealthHandler.RegisterRoutes(api)
	}

	ginRouter.NoRoute(staticFallback(cfg))
}

// staticFallback serves the SPA: paths ending in .html map to files in
// the static directory, everything else gets the default document.
func staticFallback(cfg *config.Config) gin.HandlerFunc {
	staticDir := cfg.Static.Dir
	index := filepath.Join(staticDir, cfg.Static.Index)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		path := c.Request.URL.Path
		if strings.HasSuffix(path, ".html") {
			// Clean the path so ".." cannot escape the static dir.
			clean := filepath.Clean("/" + path)
			c.File(filepath.Join(staticDir, clean))
			return
		}

		c.File(index)
	}
}

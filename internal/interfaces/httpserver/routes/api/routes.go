package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Cre-XeOnz/XeonzGen/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates API route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all routes under the /api prefix. The paths mirror the
// original front end contract and must stay stable.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")
	group.GET("/usage/:date", r.handlers.Thumbnail.Usage)
	group.POST("/analyze-prompt", r.handlers.Thumbnail.AnalyzePrompt)
	group.POST("/generate-thumbnail", r.handlers.Thumbnail.Generate)
	group.GET("/thumbnail/:id", r.handlers.Thumbnail.GetByID)
	group.POST("/create-variation", r.handlers.Thumbnail.CreateVariation)
}

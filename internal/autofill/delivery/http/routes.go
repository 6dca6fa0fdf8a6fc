package http

import (
	"github.com/gin-gonic/gin"

	"meetpoll/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Both flows require a valid session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	autofill := rg.Group("/autofill")
	{
		autofill.POST("/calendar", mw.Auth(), h.Run)
		autofill.POST("/llm", mw.Auth(), h.RunLLM)
	}
}

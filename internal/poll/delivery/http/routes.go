package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Polls are
// reached through share links, so every route is public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	polls := rg.Group("/polls")
	{
		polls.POST("", h.CreateRequest)
		polls.GET("/:uuid", h.GetRequest)
		polls.POST("/:uuid/answers", h.SubmitAnswer)
		polls.GET("/:uuid/answers", h.ListAnswers)
		polls.GET("/:uuid/answers/:answer_id/rank", h.AnswerRank)
		polls.GET("/:uuid/results", h.Results)
	}
}

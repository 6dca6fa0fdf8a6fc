package http

import (
	"github.com/gin-gonic/gin"
)

// processRunReq binds and validates the calendar-flow request body.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLLMReq binds and validates the model-flow request body.
func (h *handler) processLLMReq(c *gin.Context) (llmReq, error) {
	var req llmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

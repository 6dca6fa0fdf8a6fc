package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateRequestReq binds and validates the poll-creation body.
func (h *handler) processCreateRequestReq(c *gin.Context) (createRequestReq, error) {
	var req createRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSubmitAnswerReq binds and validates the answer-submission body.
func (h *handler) processSubmitAnswerReq(c *gin.Context) (submitAnswerReq, error) {
	var req submitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

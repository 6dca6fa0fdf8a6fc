package http

import (
	"github.com/gin-gonic/gin"

	"meetpoll/internal/autofill"
	"meetpoll/internal/middleware"
	"meetpoll/pkg/response"
)

// Run godoc
// @Summary     Auto-fill answers from the respondent's calendar
// @Description Judges every candidate slot against the respondent's calendar events and returns a suggested answer per slot.
// @Tags        AutoFill
// @Accept      json
// @Produce     json
// @Param       body body runReq true "Candidate slots"
// @Success     200 {object} runResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/autofill/calendar [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Run(ctx, middleware.SessionToken(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRunResp(output))
}

// RunLLM godoc
// @Summary     Auto-fill answers via the language model
// @Description Classifies candidate slots in batches using the configured language model and an optional free-text filter condition.
// @Tags        AutoFill
// @Accept      json
// @Produce     json
// @Param       body body llmReq true "Candidate slots and filter condition"
// @Success     200 {object} llmResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Classification failed"
// @Security    BearerAuth
// @Router      /api/v1/autofill/llm [POST]
func (h *handler) RunLLM(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLLMReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := req.toInput()
	input.OnProgress = func(done []autofill.ClassifiedSlot, message string) {
		h.l.Infof(ctx, "RunLLM: %s (%d classified)", message, len(done))
	}

	output, err := h.uc.RunLLM(ctx, middleware.SessionToken(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.RunLLM: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLLMResp(output))
}

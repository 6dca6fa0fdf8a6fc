package http

import (
	"github.com/gin-gonic/gin"

	"meetpoll/pkg/response"
)

// CreateRequest godoc
// @Summary     Create a scheduling poll
// @Description Creates a meal or trip poll with candidate slots and returns its share UUID.
// @Tags        Poll
// @Accept      json
// @Produce     json
// @Param       body body createRequestReq true "Poll definition"
// @Success     200 {object} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/polls [POST]
func (h *handler) CreateRequest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateRequest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateRequest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(output.Request))
}

// GetRequest godoc
// @Summary     Get a poll by its share UUID
// @Tags        Poll
// @Produce     json
// @Param       uuid path string true "Poll UUID"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/polls/{uuid} [GET]
func (h *handler) GetRequest(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetRequest(ctx, c.Param("uuid"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetRequest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(output.Request))
}

// SubmitAnswer godoc
// @Summary     Submit an answer to a poll
// @Description Records one respondent's per-candidate judgments and returns the stored answer with its creation-order rank.
// @Tags        Poll
// @Accept      json
// @Produce     json
// @Param       uuid path string true "Poll UUID"
// @Param       body body submitAnswerReq true "Answer"
// @Success     200 {object} submitAnswerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/polls/{uuid}/answers [POST]
func (h *handler) SubmitAnswer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitAnswerReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SubmitAnswer(ctx, req.toInput(c.Param("uuid")))
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitAnswer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitAnswerResp(output))
}

// ListAnswers godoc
// @Summary     List a poll's answers
// @Tags        Poll
// @Produce     json
// @Param       uuid path string true "Poll UUID"
// @Success     200 {object} listAnswersResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/polls/{uuid}/answers [GET]
func (h *handler) ListAnswers(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListAnswers(ctx, c.Param("uuid"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAnswers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAnswersResp(output))
}

// Results godoc
// @Summary     Get a poll's aggregated results
// @Description Aggregates each candidate's judgments and ranks candidates by accepted count descending.
// @Tags        Poll
// @Produce     json
// @Param       uuid path string true "Poll UUID"
// @Success     200 {object} resultsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/polls/{uuid}/results [GET]
func (h *handler) Results(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Results(ctx, c.Param("uuid"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Results: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResultsResp(output))
}

// AnswerRank godoc
// @Summary     Get an answer's creation-order rank
// @Tags        Poll
// @Produce     json
// @Param       uuid path string true "Poll UUID"
// @Param       answer_id path string true "Answer ID"
// @Success     200 {object} answerRankResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/polls/{uuid}/answers/{answer_id}/rank [GET]
func (h *handler) AnswerRank(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.AnswerRank(ctx, c.Param("uuid"), c.Param("answer_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.AnswerRank: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnswerRankResp(output))
}

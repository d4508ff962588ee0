package v1

import (
	"net/http"

	"go-bidtrack-backend/internal/delivery/http/response"
	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
	scheduleUC  domain.ScheduleInterviewUsecase
}

// NewInterviewHandler registers interview routes
func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase, scheduleUC domain.ScheduleInterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC, scheduleUC: scheduleUC}

	interviews := r.Group("/interviews")
	{
		interviews.POST("", handler.ScheduleInterview)
		interviews.GET("", handler.ListInterviews)
		interviews.GET("/:id", handler.GetInterview)
		interviews.POST("/:id/complete", handler.CompleteInterview)
		interviews.POST("/:id/cancel", handler.CancelInterview)
		interviews.PATCH("/:id/detail", handler.UpdateDetail)
	}

	r.GET("/bids/:id/interviews", handler.ListByBid)
}

// ScheduleInterview godoc
// @Summary      Schedule an interview
// @Description  Schedule an interview from a bid or a LinkedIn chat, subject to the eligibility policy
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ScheduleInterviewInput  true  "Interview data"
// @Success      201   {object}  response.Response{data=domain.ScheduleInterviewResult}
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /interviews [post]
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req domain.ScheduleInterviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.scheduleUC.Execute(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	if result.AlreadyScheduled {
		response.Success(c, http.StatusOK, "Interview already scheduled", result)
		return
	}
	response.Success(c, http.StatusCreated, "Interview scheduled", result)
}

func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	interviews, err := h.interviewUC.ListInterviews(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

func (h *InterviewHandler) ListByBid(c *gin.Context) {
	interviews, err := h.interviewUC.ListByBid(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", interviews)
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	interview, err := h.interviewUC.GetInterview(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview retrieved", interview)
}

// CompleteInterviewRequest is the request payload for completing an interview
type CompleteInterviewRequest struct {
	Success *bool `json:"success" binding:"required"`
}

func (h *InterviewHandler) CompleteInterview(c *gin.Context) {
	var req CompleteInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview, err := h.interviewUC.CompleteInterview(c, c.Param("id"), *req.Success)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview completed", interview)
}

func (h *InterviewHandler) CancelInterview(c *gin.Context) {
	interview, err := h.interviewUC.CancelInterview(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview cancelled", interview)
}

// UpdateDetailRequest is the request payload for updating interview notes
type UpdateDetailRequest struct {
	Detail string `json:"detail" binding:"required"`
}

func (h *InterviewHandler) UpdateDetail(c *gin.Context) {
	var req UpdateDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview, err := h.interviewUC.UpdateInterviewDetail(c, c.Param("id"), req.Detail)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview detail updated", interview)
}

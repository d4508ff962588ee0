package v1

import (
	"net/http"

	"go-bidtrack-backend/internal/delivery/http/response"
	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	bidUC       domain.BidUsecase
	createBidUC domain.CreateBidUsecase
	rebidUC     domain.RebidUsecase
}

// NewBidHandler registers bid routes
func NewBidHandler(r *gin.RouterGroup, bidUC domain.BidUsecase, createBidUC domain.CreateBidUsecase, rebidUC domain.RebidUsecase) {
	handler := &BidHandler{bidUC: bidUC, createBidUC: createBidUC, rebidUC: rebidUC}

	bids := r.Group("/bids")
	{
		bids.POST("", handler.CreateBid)
		bids.GET("", handler.ListBids)
		bids.GET("/:id", handler.GetBid)
		bids.POST("/:id/submit", handler.SubmitBid)
		bids.POST("/:id/reject", handler.RejectBid)
		bids.POST("/:id/close", handler.CloseBid)
		bids.POST("/:id/restore", handler.RestoreBid)
		bids.POST("/:id/rebid", handler.Rebid)
	}
}

// CreateBid godoc
// @Summary      Create a bid
// @Description  Create a new job application; any duplicate match blocks creation
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateBidInput  true  "Bid data"
// @Success      201   {object}  response.Response{data=domain.CreateBidResult}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /bids [post]
func (h *BidHandler) CreateBid(c *gin.Context) {
	var req domain.CreateBidInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.createBidUC.Execute(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Bid created successfully", result)
}

func (h *BidHandler) ListBids(c *gin.Context) {
	filter := &domain.BidFilter{
		Status:  c.Query("status"),
		Company: c.Query("company"),
		Role:    c.Query("role"),
	}

	bids, err := h.bidUC.ListBids(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bids retrieved", bids)
}

func (h *BidHandler) GetBid(c *gin.Context) {
	bid, err := h.bidUC.GetBid(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid retrieved", bid)
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	bid, err := h.bidUC.SubmitBid(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid submitted", bid)
}

// RejectBidRequest is the request payload for rejecting a bid
type RejectBidRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *BidHandler) RejectBid(c *gin.Context) {
	var req RejectBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	bid, err := h.bidUC.RejectBid(c, c.Param("id"), req.Reason)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid rejected", bid)
}

func (h *BidHandler) CloseBid(c *gin.Context) {
	bid, err := h.bidUC.CloseBid(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid closed", bid)
}

func (h *BidHandler) RestoreBid(c *gin.Context) {
	bid, err := h.bidUC.RestoreBid(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bid restored from rejection", bid)
}

// RebidRequest is the request payload for rebidding with a new resume
type RebidRequest struct {
	NewResumePath         string `json:"new_resume_path" binding:"required"`
	NewJobDescriptionPath string `json:"new_job_description_path"`
}

// Rebid godoc
// @Summary      Rebid with a new resume
// @Description  Create a new bid from a resume-rejected one. A refusal is a 200 with allowed=false.
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Original bid ID"
// @Param        body  body      RebidRequest  true  "Rebid data"
// @Success      201   {object}  response.Response{data=domain.RebidResult}
// @Failure      404   {object}  response.Response
// @Router       /bids/{id}/rebid [post]
func (h *BidHandler) Rebid(c *gin.Context) {
	var req RebidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.rebidUC.Execute(c, domain.RebidInput{
		OriginalBidID:         c.Param("id"),
		NewResumePath:         req.NewResumePath,
		NewJobDescriptionPath: req.NewJobDescriptionPath,
	})
	if err != nil {
		c.Error(err)
		return
	}

	if !result.Allowed {
		response.Success(c, http.StatusOK, "Rebid refused", result)
		return
	}
	response.Success(c, http.StatusCreated, "Rebid created", result)
}

package v1

import (
	"net/http"

	"go-bidtrack-backend/internal/delivery/http/response"
	"go-bidtrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bidUC domain.BidUsecase
}

// NewAdminHandler registers maintenance routes
func NewAdminHandler(r *gin.RouterGroup, bidUC domain.BidUsecase) {
	handler := &AdminHandler{bidUC: bidUC}
	r.POST("/admin/bids/auto-reject", handler.AutoReject)
}

// AutoReject runs the stale-bid sweep on demand. The cron scheduler runs the
// same sweep nightly.
func (h *AdminHandler) AutoReject(c *gin.Context) {
	rejected, err := h.bidUC.AutoRejectStale(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Auto-reject sweep finished", gin.H{"rejected": rejected})
}

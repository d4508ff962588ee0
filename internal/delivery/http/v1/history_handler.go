package v1

import (
	"net/http"

	"go-bidtrack-backend/internal/delivery/http/response"
	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	history domain.CompanyHistory
}

// NewHistoryHandler registers company failure history routes
func NewHistoryHandler(r *gin.RouterGroup, history domain.CompanyHistory) {
	handler := &HistoryHandler{history: history}
	r.GET("/history", handler.GetHistory)
}

// GetHistory returns the failure history and warning summary for a
// (company, role) pair; lookup is case-insensitive.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	company := c.Query("company")
	role := c.Query("role")
	if company == "" || role == "" {
		c.Error(apperror.BadRequest("company and role query parameters are required"))
		return
	}

	history, err := h.history.GetHistory(c, company, role)
	if err != nil {
		c.Error(err)
		return
	}

	warning, err := h.history.GetWarningMessage(c, company, role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "History retrieved", gin.H{
		"history": history,
		"warning": warning,
	})
}

package v1

import (
	"net/http"

	"go-bidtrack-backend/internal/delivery/http/response"
	"go-bidtrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeRepo domain.ResumeRepository
}

// NewResumeHandler registers resume metadata routes
func NewResumeHandler(r *gin.RouterGroup, resumeRepo domain.ResumeRepository) {
	handler := &ResumeHandler{resumeRepo: resumeRepo}
	r.GET("/resumes", handler.ListResumes)
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	metadata, err := h.resumeRepo.GetAllResumeMetadata(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", metadata)
}

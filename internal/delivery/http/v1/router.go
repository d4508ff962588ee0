package v1

import (
	"net/http"

	"go-bidtrack-backend/config"
	"go-bidtrack-backend/internal/delivery/http/middleware"
	"go-bidtrack-backend/internal/delivery/http/response"
	"go-bidtrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	BidUC       domain.BidUsecase
	CreateBidUC domain.CreateBidUsecase
	RebidUC     domain.RebidUsecase
	InterviewUC domain.InterviewUsecase
	ScheduleUC  domain.ScheduleInterviewUsecase
	History     domain.CompanyHistory
	ResumeRepo  domain.ResumeRepository
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret))
	{
		NewBidHandler(protected, deps.BidUC, deps.CreateBidUC, deps.RebidUC)
		NewInterviewHandler(protected, deps.InterviewUC, deps.ScheduleUC)
		NewResumeHandler(protected, deps.ResumeRepo)
		NewHistoryHandler(protected, deps.History)
		NewAdminHandler(protected, deps.BidUC)
	}

	return r
}

package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/internal/repository/memory"
	"go-bidtrack-backend/internal/usecase"
	"go-bidtrack-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func resumeRejectedBid(t *testing.T) *domain.Bid {
	t.Helper()
	bid, err := domain.NewBid(domain.NewBidParams{
		Link:               "https://jobs.example.com/backend-123",
		Company:            "Acme Corp",
		Client:             "Acme Client",
		Role:               "Backend Engineer",
		Skills:             domain.LegacySkills([]string{"Go"}),
		JobDescriptionPath: "/jd/acme.md",
		ResumePath:         "/resumes/go-backend-v1.pdf",
		Origin:             domain.BidOriginBid,
	})
	assert.NoError(t, err)
	assert.NoError(t, bid.MarkAsSubmitted())
	assert.NoError(t, bid.MarkAsRejected(domain.RejectionUnsatisfiedResume))
	return bid
}

func TestRebidUsecase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new bid with the new resume and flags the original", func(t *testing.T) {
		original := resumeRejectedBid(t)

		var saved *domain.Bid
		bidRepo := new(MockBidRepo)
		bidRepo.On("FindByID", ctx, original.ID).Return(original, nil)
		bidRepo.On("FindAll", ctx, (*domain.BidFilter)(nil)).Return([]domain.Bid{}, nil)
		bidRepo.On("Save", ctx, mock.AnythingOfType("*domain.Bid")).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Bid)
		}).Return(nil)
		bidRepo.On("Update", ctx, original).Return(nil)

		uc := usecase.NewRebidUsecase(bidRepo, memory.NewCompanyHistory())
		result, err := uc.Execute(ctx, domain.RebidInput{
			OriginalBidID: original.ID,
			NewResumePath: "/resumes/go-backend-v2.pdf",
		})

		assert.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, saved.ID, result.NewBidID)
		assert.NotEqual(t, original.ID, saved.ID)
		assert.Equal(t, "/resumes/go-backend-v2.pdf", saved.ResumePath)
		assert.Equal(t, original.Company, saved.Company)
		assert.Equal(t, original.Link, saved.Link)
		assert.Equal(t, &original.ID, saved.OriginalBidID)
		assert.Equal(t, domain.BidStatusNew, saved.Status)
		assert.True(t, original.HasBeenRebid)
		bidRepo.AssertExpectations(t)
	})

	t.Run("refuses when the bid already reached the interview stage", func(t *testing.T) {
		original := resumeRejectedBid(t)
		original.InterviewWinning = true

		bidRepo := new(MockBidRepo)
		bidRepo.On("FindByID", ctx, original.ID).Return(original, nil)

		uc := usecase.NewRebidUsecase(bidRepo, memory.NewCompanyHistory())
		result, err := uc.Execute(ctx, domain.RebidInput{
			OriginalBidID: original.ID,
			NewResumePath: "/resumes/go-backend-v2.pdf",
		})

		assert.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Contains(t, result.Reason, "interview stage")
		bidRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("refuses a non-rejected bid", func(t *testing.T) {
		original := resumeRejectedBid(t)
		assert.NoError(t, original.RestoreFromRejection())

		bidRepo := new(MockBidRepo)
		bidRepo.On("FindByID", ctx, original.ID).Return(original, nil)

		uc := usecase.NewRebidUsecase(bidRepo, memory.NewCompanyHistory())
		result, err := uc.Execute(ctx, domain.RebidInput{
			OriginalBidID: original.ID,
			NewResumePath: "/resumes/go-backend-v2.pdf",
		})

		assert.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Contains(t, result.Reason, "only rejected bids")
	})

	t.Run("refuses a rejection reason other than an unsatisfied resume", func(t *testing.T) {
		original := resumeRejectedBid(t)
		assert.NoError(t, original.MarkAsRejected(domain.RejectionRoleClosed))

		bidRepo := new(MockBidRepo)
		bidRepo.On("FindByID", ctx, original.ID).Return(original, nil)

		uc := usecase.NewRebidUsecase(bidRepo, memory.NewCompanyHistory())
		result, err := uc.Execute(ctx, domain.RebidInput{
			OriginalBidID: original.ID,
			NewResumePath: "/resumes/go-backend-v2.pdf",
		})

		assert.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Contains(t, result.Reason, domain.RejectionRoleClosed)
	})

	t.Run("duplication warnings are advisory and do not block", func(t *testing.T) {
		original := resumeRejectedBid(t)

		var saved *domain.Bid
		bidRepo := new(MockBidRepo)
		bidRepo.On("FindByID", ctx, original.ID).Return(original, nil)
		bidRepo.On("FindAll", ctx, (*domain.BidFilter)(nil)).Return([]domain.Bid{*original}, nil)
		bidRepo.On("Save", ctx, mock.AnythingOfType("*domain.Bid")).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Bid)
		}).Return(nil)
		bidRepo.On("Update", ctx, original).Return(nil)

		uc := usecase.NewRebidUsecase(bidRepo, memory.NewCompanyHistory())
		result, err := uc.Execute(ctx, domain.RebidInput{
			OriginalBidID: original.ID,
			NewResumePath: "/resumes/go-backend-v2.pdf",
		})

		assert.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.NotEmpty(t, result.Warnings)
		assert.NotEmpty(t, saved.BidDetail)
	})

	t.Run("attaches the company failure warning to the new bid", func(t *testing.T) {
		original := resumeRejectedBid(t)
		history := memory.NewCompanyHistory()
		assert.NoError(t, history.RecordFailure(ctx, original.Company, original.Role, domain.FailureRecord{
			InterviewID: "iv-1",
			Date:        time.Now(),
			Recruiter:   "Jordan",
			Attendees:   []string{"Sam"},
		}))

		var saved *domain.Bid
		bidRepo := new(MockBidRepo)
		bidRepo.On("FindByID", ctx, original.ID).Return(original, nil)
		bidRepo.On("FindAll", ctx, (*domain.BidFilter)(nil)).Return([]domain.Bid{}, nil)
		bidRepo.On("Save", ctx, mock.AnythingOfType("*domain.Bid")).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Bid)
		}).Return(nil)
		bidRepo.On("Update", ctx, original).Return(nil)

		uc := usecase.NewRebidUsecase(bidRepo, history)
		_, err := uc.Execute(ctx, domain.RebidInput{
			OriginalBidID: original.ID,
			NewResumePath: "/resumes/go-backend-v2.pdf",
		})

		assert.NoError(t, err)
		assert.Contains(t, saved.BidDetail, "previous interview failure")
	})

	t.Run("missing original bid is a not-found error", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		bidRepo.On("FindByID", ctx, "nope").Return(nil, domain.ErrNotFound)

		uc := usecase.NewRebidUsecase(bidRepo, memory.NewCompanyHistory())
		_, err := uc.Execute(ctx, domain.RebidInput{
			OriginalBidID: "nope",
			NewResumePath: "/resumes/go-backend-v2.pdf",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

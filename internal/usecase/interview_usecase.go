package usecase

import (
	"context"
	"net/http"
	"time"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"
	"go-bidtrack-backend/pkg/logger"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	bidRepo       domain.BidRepository
	history       domain.CompanyHistory
}

// NewInterviewUsecase creates the interview query/lifecycle usecase
func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	bidRepo domain.BidRepository,
	history domain.CompanyHistory,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		bidRepo:       bidRepo,
		history:       history,
	}
}

func (uc *interviewUsecase) GetInterview(ctx context.Context, id string) (*domain.Interview, error) {
	interview, err := uc.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	return interview, nil
}

func (uc *interviewUsecase) ListInterviews(ctx context.Context) ([]domain.Interview, error) {
	interviews, err := uc.interviewRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (uc *interviewUsecase) ListByBid(ctx context.Context, bidID string) ([]domain.Interview, error) {
	interviews, err := uc.interviewRepo.FindByBidID(ctx, bidID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

// CompleteInterview finishes a scheduled interview. A failure is recorded
// into the company failure history, and a bid still in interview stage is
// moved to INTERVIEW_FAILED.
func (uc *interviewUsecase) CompleteInterview(ctx context.Context, id string, success bool) (*domain.Interview, error) {
	interview, err := uc.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if err := interview.MarkAsCompleted(success); err != nil {
		return nil, apperror.New(http.StatusConflict, err.Error(), err)
	}
	if err := uc.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperror.Internal(err)
	}

	if interview.IsFailed() {
		info := interview.GetFailureInfo()
		record := domain.FailureRecord{
			InterviewID: interview.ID,
			Date:        time.Now(),
			Recruiter:   info.Recruiter,
			Attendees:   info.Attendees,
		}
		if err := uc.history.RecordFailure(ctx, info.Company, info.Role, record); err != nil {
			return nil, apperror.Internal(err)
		}
		if interview.BidID != nil {
			uc.failLinkedBid(ctx, *interview.BidID)
		}
	}

	logger.Log.Info("interview completed",
		"interview_id", interview.ID, "status", interview.Status)
	return interview, nil
}

// failLinkedBid moves the linked bid to INTERVIEW_FAILED when possible. A
// bid that already left the interview stage is left alone.
func (uc *interviewUsecase) failLinkedBid(ctx context.Context, bidID string) {
	bid, err := uc.bidRepo.FindByID(ctx, bidID)
	if err != nil {
		logger.Log.Warn("failed interview references missing bid", "bid_id", bidID)
		return
	}
	if bid.Status != domain.BidStatusInterviewStage {
		return
	}
	if err := bid.MarkInterviewFailed(); err != nil {
		return
	}
	if err := uc.bidRepo.Update(ctx, bid); err != nil {
		logger.Log.Error("could not update bid after interview failure", "bid_id", bidID, "error", err)
	}
}

func (uc *interviewUsecase) CancelInterview(ctx context.Context, id string) (*domain.Interview, error) {
	interview, err := uc.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if err := interview.MarkAsCancelled(); err != nil {
		return nil, apperror.New(http.StatusConflict, err.Error(), err)
	}
	if err := uc.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperror.Internal(err)
	}
	return interview, nil
}

func (uc *interviewUsecase) UpdateInterviewDetail(ctx context.Context, id, detail string) (*domain.Interview, error) {
	interview, err := uc.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if err := interview.UpdateDetail(detail); err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	if err := uc.interviewRepo.Update(ctx, interview); err != nil {
		return nil, apperror.Internal(err)
	}
	return interview, nil
}

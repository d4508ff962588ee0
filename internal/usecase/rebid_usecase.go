package usecase

import (
	"context"
	"net/http"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"
	"go-bidtrack-backend/pkg/logger"
)

type rebidUsecase struct {
	bidRepo domain.BidRepository
	history domain.CompanyHistory
}

// NewRebidUsecase creates the rebid-with-new-resume workflow
func NewRebidUsecase(bidRepo domain.BidRepository, history domain.CompanyHistory) domain.RebidUsecase {
	return &rebidUsecase{bidRepo: bidRepo, history: history}
}

// Execute retries a resume-rejected bid with a new resume. A refusal is an
// expected outcome and comes back as Allowed=false, not as an error.
// Duplication warnings are advisory here and never block.
func (uc *rebidUsecase) Execute(ctx context.Context, in domain.RebidInput) (*domain.RebidResult, error) {
	if in.OriginalBidID == "" {
		return nil, apperror.BadRequest("original_bid_id is required")
	}
	if in.NewResumePath == "" {
		return nil, apperror.BadRequest("new_resume_path is required")
	}

	// 1. Load the original
	original, err := uc.bidRepo.FindByID(ctx, in.OriginalBidID)
	if err != nil {
		return nil, apperror.NotFound("Original bid not found")
	}

	// 2. Refusals are results, not errors
	if !original.CanRebid() {
		return &domain.RebidResult{Allowed: false, Reason: rebidRefusalReason(original)}, nil
	}

	// 3. Copy the original, swapping in the new resume
	jobDescriptionPath := original.JobDescriptionPath
	if in.NewJobDescriptionPath != "" {
		jobDescriptionPath = in.NewJobDescriptionPath
	}
	newBid, err := domain.NewBid(domain.NewBidParams{
		Link:               original.Link,
		Company:            original.Company,
		Client:             original.Client,
		Role:               original.Role,
		Skills:             original.Skills,
		LayerWeights:       original.LayerWeights,
		JobDescriptionPath: jobDescriptionPath,
		ResumePath:         in.NewResumePath,
		Origin:             original.Origin,
		Recruiter:          original.Recruiter,
		JDSpecificationID:  original.JDSpecificationID,
		OriginalBidID:      &original.ID,
	})
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
	}

	// 4. Duplication check is advisory for rebids
	existing, err := uc.bidRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	warnings := domain.CheckDuplication(domain.BidCandidate{
		Link:    newBid.Link,
		Company: newBid.Company,
		Role:    newBid.Role,
	}, existing)
	for _, w := range warnings {
		newBid.AttachWarning(w.Message)
	}

	// 5. Company-history warning, also advisory
	companyWarning, err := uc.history.GetWarningMessage(ctx, newBid.Company, newBid.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if companyWarning != "" {
		newBid.AttachWarning(companyWarning)
	}

	// 6. Persist the new bid first, then flag the original
	if err := uc.bidRepo.Save(ctx, newBid); err != nil {
		return nil, apperror.Internal(err)
	}
	original.MarkAsRebid()
	if err := uc.bidRepo.Update(ctx, original); err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("bid rebid", "original_bid_id", original.ID, "new_bid_id", newBid.ID)

	return &domain.RebidResult{
		NewBidID: newBid.ID,
		Allowed:  true,
		Reason:   "rebid created with new resume",
		Warnings: warnings,
	}, nil
}

func rebidRefusalReason(b *domain.Bid) string {
	if b.InterviewWinning {
		return "bid already reached the interview stage"
	}
	if b.Status != domain.BidStatusRejected {
		return "only rejected bids can be rebid (status is " + b.Status + ")"
	}
	if b.RejectionReason == nil {
		return "bid has no rejection reason recorded"
	}
	return "rejection reason " + *b.RejectionReason + " does not qualify for a rebid"
}

package usecase

import (
	"context"
	"net/http"
	"strings"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"
	"go-bidtrack-backend/pkg/logger"
	"go-bidtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type createBidUsecase struct {
	bidRepo    domain.BidRepository
	resumeRepo domain.ResumeRepository // optional; nil disables resume-id resolution
	history    domain.CompanyHistory
	validate   *validator.Validate
}

// NewCreateBidUsecase creates the create-bid workflow
func NewCreateBidUsecase(
	bidRepo domain.BidRepository,
	resumeRepo domain.ResumeRepository,
	history domain.CompanyHistory,
	validate *validator.Validate,
) domain.CreateBidUsecase {
	return &createBidUsecase{
		bidRepo:    bidRepo,
		resumeRepo: resumeRepo,
		history:    history,
		validate:   validate,
	}
}

// Execute validates the input, blocks on any duplication warning, attaches
// the company-history warning if there is one, and persists the new bid.
func (uc *createBidUsecase) Execute(ctx context.Context, in domain.CreateBidInput) (*domain.CreateBidResult, error) {
	// 1. Validate shape
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.New(http.StatusBadRequest, validation.Format(err), err)
	}
	if err := in.Skills.Validate(); err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	if in.LayerWeights != nil {
		if err := in.LayerWeights.Validate(); err != nil {
			return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
		}
	}
	if in.Origin == domain.BidOriginLinkedIn && strings.TrimSpace(in.Recruiter) == "" {
		return nil, apperror.BadRequest("recruiter is required for LinkedIn bids")
	}
	if (in.ResumePath == "") == (in.ResumeID == "") {
		return nil, apperror.BadRequest("exactly one of resume_path and resume_id is required")
	}

	// 2. Resolve the resume file
	resumePath, err := uc.resolveResumePath(ctx, in)
	if err != nil {
		return nil, err
	}

	// 3. Any duplicate match blocks creation
	existing, err := uc.bidRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	candidate := domain.BidCandidate{Link: in.Link, Company: in.Company, Role: in.Role}
	if warnings := domain.CheckDuplication(candidate, existing); len(warnings) > 0 {
		dupErr := &domain.DuplicateBidError{Warnings: warnings}
		return nil, apperror.New(http.StatusConflict, dupErr.Error(), dupErr)
	}

	// 4. Company-history warning is advisory: attach, never block
	companyWarning, err := uc.history.GetWarningMessage(ctx, in.Company, in.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// 5. Construct
	bid, err := domain.NewBid(domain.NewBidParams{
		Link:               in.Link,
		Company:            in.Company,
		Client:             in.Client,
		Role:               in.Role,
		Skills:             in.Skills,
		LayerWeights:       in.LayerWeights,
		JobDescriptionPath: in.JobDescriptionPath,
		ResumePath:         resumePath,
		Origin:             in.Origin,
		Recruiter:          in.Recruiter,
		JDSpecificationID:  in.JDSpecificationID,
	})
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	if companyWarning != "" {
		bid.AttachWarning(companyWarning)
	}

	// 6. Persist
	if err := uc.bidRepo.Save(ctx, bid); err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("bid created", "bid_id", bid.ID, "company", bid.Company, "role", bid.Role)

	return &domain.CreateBidResult{
		BidID:          bid.ID,
		Warnings:       []domain.DuplicationWarning{},
		CompanyWarning: companyWarning,
	}, nil
}

// resolveResumePath returns the path directly, or looks the id up in the
// resume store and verifies the file is still on disk.
func (uc *createBidUsecase) resolveResumePath(ctx context.Context, in domain.CreateBidInput) (string, error) {
	if in.ResumePath != "" {
		return in.ResumePath, nil
	}
	if uc.resumeRepo == nil {
		return "", apperror.BadRequest("resume_id given but no resume store is configured")
	}
	metadata, err := uc.resumeRepo.GetAllResumeMetadata(ctx)
	if err != nil {
		return "", apperror.Internal(err)
	}
	for _, meta := range metadata {
		if meta.ID != in.ResumeID {
			continue
		}
		if !uc.resumeRepo.FileExists(meta.FilePath) {
			return "", apperror.BadRequest("resume file no longer exists: " + meta.FilePath)
		}
		return meta.FilePath, nil
	}
	return "", apperror.BadRequest("unknown resume id: " + in.ResumeID)
}

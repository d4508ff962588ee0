package usecase

import (
	"context"
	"net/http"
	"strings"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/pkg/apperror"
	"go-bidtrack-backend/pkg/logger"
)

type scheduleInterviewUsecase struct {
	interviewRepo domain.InterviewRepository
	bidRepo       domain.BidRepository
	history       domain.CompanyHistory
}

// NewScheduleInterviewUsecase creates the schedule-interview workflow
func NewScheduleInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	bidRepo domain.BidRepository,
	history domain.CompanyHistory,
) domain.ScheduleInterviewUsecase {
	return &scheduleInterviewUsecase{
		interviewRepo: interviewRepo,
		bidRepo:       bidRepo,
		history:       history,
	}
}

// Execute validates the request, copies company/client/role from the bid for
// bid-based interviews, dedups against an already-scheduled interview of the
// same type, consults the eligibility policy, and persists the interview
// plus the follow-on bid mutations.
func (uc *scheduleInterviewUsecase) Execute(ctx context.Context, in domain.ScheduleInterviewInput) (*domain.ScheduleInterviewResult, error) {
	// 1. Validate shape. HR interviews may have zero attendees, every other
	// stage needs at least one.
	if strings.TrimSpace(in.Recruiter) == "" {
		return nil, apperror.BadRequest("recruiter is required")
	}
	if strings.TrimSpace(in.Type) == "" {
		return nil, apperror.BadRequest("interview type is required")
	}
	if in.Type != domain.InterviewTypeHR && len(in.Attendees) == 0 {
		return nil, apperror.BadRequest("attendees are required for non-HR interviews")
	}

	company, client, role := in.Company, in.Client, in.Role
	var bid *domain.Bid

	switch in.Base {
	case domain.InterviewBaseBid:
		// 2. Bid-based interviews take their identity from the bid
		if in.BidID == "" {
			return nil, apperror.BadRequest("bid_id is required for bid-based interviews")
		}
		var err error
		bid, err = uc.bidRepo.FindByID(ctx, in.BidID)
		if err != nil {
			return nil, apperror.NotFound("Bid not found")
		}
		company, client, role = bid.Company, bid.Client, bid.Role

		// 3. Idempotency guard: an identical scheduled interview wins over
		// creating a duplicate. Read-then-write; the unique index at the
		// persistence layer covers concurrent requests.
		existing, err := uc.interviewRepo.FindByBidID(ctx, in.BidID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for _, iv := range existing {
			if iv.Type == in.Type && iv.Status == domain.InterviewStatusScheduled {
				return &domain.ScheduleInterviewResult{
					InterviewID:      iv.ID,
					Eligibility:      domain.EligibilityResult{Allowed: true, Reason: "interview already scheduled"},
					AlreadyScheduled: true,
				}, nil
			}
		}
	case domain.InterviewBaseLinkedInChat:
		if strings.TrimSpace(company) == "" || strings.TrimSpace(client) == "" || strings.TrimSpace(role) == "" {
			return nil, apperror.BadRequest("company, client and role are required for LinkedIn-chat interviews")
		}
	default:
		return nil, apperror.BadRequest("unknown interview base")
	}

	// 4. Eligibility against the recorded failure history
	history, err := uc.history.GetHistory(ctx, company, role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	eligibility := domain.CheckEligibility(company, role, in.Recruiter, in.Attendees, history)
	if !eligibility.Allowed {
		inelErr := &domain.IneligibleError{Result: eligibility}
		return nil, apperror.New(http.StatusUnprocessableEntity, inelErr.Error(), inelErr)
	}

	// 5. Construct
	var bidID *string
	if in.Base == domain.InterviewBaseBid {
		bidID = &in.BidID
	}
	interview, err := domain.NewInterview(domain.NewInterviewParams{
		Base:           in.Base,
		Company:        company,
		Client:         client,
		Role:           role,
		JobDescription: in.JobDescription,
		Resume:         in.Resume,
		Type:           in.Type,
		Recruiter:      in.Recruiter,
		Attendees:      in.Attendees,
		Detail:         in.Detail,
		BidID:          bidID,
		Date:           in.Date,
	})
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, err.Error(), err)
	}

	// 6. Persist
	if err := uc.interviewRepo.Save(ctx, interview); err != nil {
		return nil, apperror.Internal(err)
	}

	// 7. The first HR interview is the moment the bid wins an interview
	if bid != nil && in.Type == domain.InterviewTypeHR {
		if err := bid.MarkInterviewStarted(); err != nil {
			return nil, apperror.New(http.StatusConflict, err.Error(), err)
		}
		if err := uc.bidRepo.Update(ctx, bid); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	// 8. Flag the prior stage when this one was scheduled from it
	if in.BaseInterviewID != "" {
		prior, err := uc.interviewRepo.FindByID(ctx, in.BaseInterviewID)
		if err != nil {
			return nil, apperror.NotFound("Base interview not found")
		}
		prior.MarkAsScheduledNext()
		if err := uc.interviewRepo.Update(ctx, prior); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	logger.Log.Info("interview scheduled",
		"interview_id", interview.ID, "type", interview.Type, "company", company, "role", role)

	return &domain.ScheduleInterviewResult{
		InterviewID: interview.ID,
		Eligibility: eligibility,
	}, nil
}

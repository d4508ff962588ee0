package domain

import (
	"context"
	"time"
)

// CreateBidInput is the request shape for the create-bid workflow. Exactly
// one of ResumePath and ResumeID must be set.
type CreateBidInput struct {
	Link               string        `json:"link" validate:"required"`
	Company            string        `json:"company" validate:"required"`
	Client             string        `json:"client" validate:"required"`
	Role               string        `json:"role" validate:"required"`
	Skills             SkillData     `json:"skills"`
	LayerWeights       *LayerWeights `json:"layer_weights,omitempty"`
	JobDescriptionPath string        `json:"job_description_path" validate:"required"`
	ResumePath         string        `json:"resume_path,omitempty"`
	ResumeID           string        `json:"resume_id,omitempty"`
	Origin             string        `json:"origin" validate:"required,bid_origin"`
	Recruiter          string        `json:"recruiter,omitempty"`
	JDSpecificationID  *string       `json:"jd_specification_id,omitempty"`
}

// CreateBidResult reports a successful bid creation. Warnings is always
// empty on success because any duplication warning blocks the workflow.
type CreateBidResult struct {
	BidID          string               `json:"bid_id"`
	Warnings       []DuplicationWarning `json:"warnings"`
	CompanyWarning string               `json:"company_warning,omitempty"`
}

type CreateBidUsecase interface {
	Execute(ctx context.Context, in CreateBidInput) (*CreateBidResult, error)
}

// ScheduleInterviewInput is the request shape for the schedule-interview
// workflow. Company/client/role are only read for LinkedIn-chat interviews;
// bid-based ones copy them from the referenced bid.
type ScheduleInterviewInput struct {
	Base            string    `json:"base" validate:"required"`
	BidID           string    `json:"bid_id,omitempty"`
	Company         string    `json:"company,omitempty"`
	Client          string    `json:"client,omitempty"`
	Role            string    `json:"role,omitempty"`
	JobDescription  string    `json:"job_description,omitempty"`
	Resume          string    `json:"resume,omitempty"`
	Type            string    `json:"type" validate:"required"`
	Recruiter       string    `json:"recruiter" validate:"required"`
	Attendees       []string  `json:"attendees"`
	Detail          string    `json:"detail,omitempty"`
	BaseInterviewID string    `json:"base_interview_id,omitempty"` // set when scheduling the next stage
	Date            time.Time `json:"date,omitempty"`
}

// ScheduleInterviewResult reports the scheduled interview. AlreadyScheduled
// is set when the idempotency guard found an existing SCHEDULED interview of
// the same type for the bid and returned it instead of creating another.
type ScheduleInterviewResult struct {
	InterviewID      string            `json:"interview_id"`
	Eligibility      EligibilityResult `json:"eligibility"`
	AlreadyScheduled bool              `json:"already_scheduled"`
}

type ScheduleInterviewUsecase interface {
	Execute(ctx context.Context, in ScheduleInterviewInput) (*ScheduleInterviewResult, error)
}

// RebidInput is the request shape for the rebid-with-new-resume workflow
type RebidInput struct {
	OriginalBidID         string `json:"original_bid_id" validate:"required"`
	NewResumePath         string `json:"new_resume_path" validate:"required"`
	NewJobDescriptionPath string `json:"new_job_description_path,omitempty"`
}

// RebidResult reports the rebid outcome. A refused rebid is an expected
// result, not an error: Allowed is false and Reason explains why.
type RebidResult struct {
	NewBidID string               `json:"new_bid_id,omitempty"`
	Allowed  bool                 `json:"allowed"`
	Reason   string               `json:"reason"`
	Warnings []DuplicationWarning `json:"warnings,omitempty"`
}

type RebidUsecase interface {
	Execute(ctx context.Context, in RebidInput) (*RebidResult, error)
}

package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Interview base constants: derived from a bid, or entered manually from a
// LinkedIn chat.
const (
	InterviewBaseBid          = "BID"
	InterviewBaseLinkedInChat = "LINKEDIN_CHAT"
)

// Interview type constants, ordered stages
const (
	InterviewTypeHR     = "HR"
	InterviewTypeTech1  = "TECH_1"
	InterviewTypeTech2  = "TECH_2"
	InterviewTypeTech3  = "TECH_3"
	InterviewTypeFinal  = "FINAL"
	InterviewTypeClient = "CLIENT"
)

// InterviewTypes lists the stages in interview order
var InterviewTypes = []string{
	InterviewTypeHR,
	InterviewTypeTech1,
	InterviewTypeTech2,
	InterviewTypeTech3,
	InterviewTypeFinal,
	InterviewTypeClient,
}

// Interview status constants. SCHEDULED is the only non-terminal state.
const (
	InterviewStatusScheduled        = "SCHEDULED"
	InterviewStatusCompletedSuccess = "COMPLETED_SUCCESS"
	InterviewStatusCompletedFailure = "COMPLETED_FAILURE"
	InterviewStatusCancelled        = "CANCELLED"
)

// Interview represents one interview event, optionally linked to a bid
type Interview struct {
	ID             string    `json:"id"`
	Base           string    `json:"base"` // BID | LINKEDIN_CHAT
	Company        string    `json:"company"`
	Client         string    `json:"client"`
	Role           string    `json:"role"`
	JobDescription string    `json:"job_description"`
	Resume         string    `json:"resume"`
	Type           string    `json:"type"`
	Recruiter      string    `json:"recruiter"`
	Attendees      []string  `json:"attendees"`
	Detail         string    `json:"detail"`
	BidID          *string   `json:"bid_id,omitempty"` // required iff base is BID
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	NextScheduled  bool      `json:"next_scheduled"` // a follow-up interview exists
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewInterviewParams carries everything the Interview factory needs
type NewInterviewParams struct {
	Base           string
	Company        string
	Client         string
	Role           string
	JobDescription string
	Resume         string
	Type           string
	Recruiter      string
	Attendees      []string
	Detail         string
	BidID          *string
	Date           time.Time
}

// NewInterview constructs a SCHEDULED interview. A bid-based interview must
// reference its bid; a LinkedIn-chat one must not.
func NewInterview(p NewInterviewParams) (*Interview, error) {
	switch p.Base {
	case InterviewBaseBid:
		if p.BidID == nil || *p.BidID == "" {
			return nil, &ValidationError{Field: "bid_id", Message: "is required for bid-based interviews"}
		}
	case InterviewBaseLinkedInChat:
		if p.BidID != nil {
			return nil, &ValidationError{Field: "bid_id", Message: "must be empty for LinkedIn-chat interviews"}
		}
	default:
		return nil, &ValidationError{Field: "base", Message: "unknown interview base"}
	}

	if !validInterviewType(p.Type) {
		return nil, &ValidationError{Field: "type", Message: "unknown interview type"}
	}

	now := time.Now()
	date := p.Date
	if date.IsZero() {
		date = now
	}
	return &Interview{
		ID:             uuid.NewString(),
		Base:           p.Base,
		Company:        p.Company,
		Client:         p.Client,
		Role:           p.Role,
		JobDescription: p.JobDescription,
		Resume:         p.Resume,
		Type:           p.Type,
		Recruiter:      p.Recruiter,
		Attendees:      append([]string(nil), p.Attendees...),
		Detail:         p.Detail,
		BidID:          p.BidID,
		Date:           date,
		Status:         InterviewStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func validInterviewType(t string) bool {
	for _, known := range InterviewTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MarkAsCompleted finishes a scheduled interview, either way
func (i *Interview) MarkAsCompleted(success bool) error {
	switch i.Status {
	case InterviewStatusScheduled:
	case InterviewStatusCompletedSuccess:
		return &InvalidTransitionError{Entity: "interview", Action: "complete", Status: i.Status, Detail: "interview already completed successfully"}
	case InterviewStatusCompletedFailure:
		return &InvalidTransitionError{Entity: "interview", Action: "complete", Status: i.Status, Detail: "interview already completed as a failure"}
	case InterviewStatusCancelled:
		return &InvalidTransitionError{Entity: "interview", Action: "complete", Status: i.Status, Detail: "interview was cancelled"}
	default:
		return &InvalidTransitionError{Entity: "interview", Action: "complete", Status: i.Status}
	}
	if success {
		i.Status = InterviewStatusCompletedSuccess
	} else {
		i.Status = InterviewStatusCompletedFailure
	}
	return nil
}

func (i *Interview) MarkAsCancelled() error {
	switch i.Status {
	case InterviewStatusScheduled:
	case InterviewStatusCompletedSuccess:
		return &InvalidTransitionError{Entity: "interview", Action: "cancel", Status: i.Status, Detail: "interview already completed successfully"}
	case InterviewStatusCompletedFailure:
		return &InvalidTransitionError{Entity: "interview", Action: "cancel", Status: i.Status, Detail: "interview already completed as a failure"}
	case InterviewStatusCancelled:
		return &InvalidTransitionError{Entity: "interview", Action: "cancel", Status: i.Status, Detail: "interview already cancelled"}
	default:
		return &InvalidTransitionError{Entity: "interview", Action: "cancel", Status: i.Status}
	}
	i.Status = InterviewStatusCancelled
	return nil
}

func (i *Interview) IsFailed() bool {
	return i.Status == InterviewStatusCompletedFailure
}

// FailureInfo is what CompanyHistory records about a failed interview
type FailureInfo struct {
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	Recruiter string   `json:"recruiter"`
	Attendees []string `json:"attendees"`
}

// GetFailureInfo returns the data CompanyHistory needs, with a defensive
// copy of the attendee list.
func (i *Interview) GetFailureInfo() FailureInfo {
	return FailureInfo{
		Company:   i.Company,
		Role:      i.Role,
		Recruiter: i.Recruiter,
		Attendees: append([]string(nil), i.Attendees...),
	}
}

func (i *Interview) UpdateDetail(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "detail", Message: "must not be empty"}
	}
	i.Detail = text
	return nil
}

// MarkAsScheduledNext flags that a follow-up interview has been scheduled
// from this one. One-way flag.
func (i *Interview) MarkAsScheduledNext() {
	i.NextScheduled = true
}

// InterviewRepository defines data access methods for interviews
type InterviewRepository interface {
	Save(ctx context.Context, interview *Interview) error
	FindByID(ctx context.Context, id string) (*Interview, error)
	FindAll(ctx context.Context) ([]Interview, error)
	FindByBidID(ctx context.Context, bidID string) ([]Interview, error)
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id string) error
}

// InterviewUsecase defines query and lifecycle operations on existing
// interviews. Scheduling goes through ScheduleInterviewUsecase.
type InterviewUsecase interface {
	GetInterview(ctx context.Context, id string) (*Interview, error)
	ListInterviews(ctx context.Context) ([]Interview, error)
	ListByBid(ctx context.Context, bidID string) ([]Interview, error)
	CompleteInterview(ctx context.Context, id string, success bool) (*Interview, error)
	CancelInterview(ctx context.Context, id string) (*Interview, error)
	UpdateInterviewDetail(ctx context.Context, id, detail string) (*Interview, error)
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Bid status constants. Transitions are one-directional except the explicit
// restore-from-rejection escape hatch.
const (
	BidStatusNew             = "NEW"
	BidStatusSubmitted       = "SUBMITTED"
	BidStatusRejected        = "REJECTED"
	BidStatusInterviewStage  = "INTERVIEW_STAGE"
	BidStatusInterviewFailed = "INTERVIEW_FAILED"
	BidStatusClosed          = "CLOSED"
)

// Bid origin constants
const (
	BidOriginLinkedIn = "LINKEDIN"
	BidOriginBid      = "BID"
)

// Rejection reason constants
const (
	RejectionUnsatisfiedResume = "UNSATISFIED_RESUME"
	RejectionRoleClosed        = "ROLE_CLOSED"
	RejectionAutoRejected      = "AUTO_REJECTED"
)

// AutoRejectAfterDays is how long a bid may sit in NEW or SUBMITTED before
// the sweep rejects it.
const AutoRejectAfterDays = 14

// InvalidTransitionError reports a state-machine method invoked from a state
// that forbids it. The message always names the conflicting state.
type InvalidTransitionError struct {
	Entity string
	Action string
	Status string
	Detail string
}

func (e *InvalidTransitionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("cannot %s %s in status %s: %s", e.Action, e.Entity, e.Status, e.Detail)
	}
	return fmt.Sprintf("cannot %s %s in status %s", e.Action, e.Entity, e.Status)
}

// ValidationError reports malformed workflow input. Nothing is persisted when
// one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Bid represents one job application
type Bid struct {
	ID                 string        `json:"id"`
	BidDate            time.Time     `json:"bid_date"` // normalized to midnight
	Link               string        `json:"link"`
	Company            string        `json:"company"`
	Client             string        `json:"client"`
	Role               string        `json:"role"`
	Skills             SkillData     `json:"skills"`
	LayerWeights       *LayerWeights `json:"layer_weights,omitempty"`
	JobDescriptionPath string        `json:"job_description_path"`
	ResumePath         string        `json:"resume_path"`
	Origin             string        `json:"origin"`              // LINKEDIN | BID
	Recruiter          string        `json:"recruiter,omitempty"` // required iff origin is LINKEDIN
	JDSpecificationID  *string       `json:"jd_specification_id,omitempty"`
	Status             string        `json:"status"`
	InterviewWinning   bool          `json:"interview_winning"` // once true, never reverts
	BidDetail          string        `json:"bid_detail"`
	ResumeChecker      *string       `json:"resume_checker,omitempty"`
	RejectionReason    *string       `json:"rejection_reason,omitempty"`
	OriginalBidID      *string       `json:"original_bid_id,omitempty"` // set when created via rebid
	HasBeenRebid       bool          `json:"has_been_rebid"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// NewBidParams carries everything the Bid factory needs. Workflows build it
// after their own input validation; the factory re-checks the invariants it
// owns so a Bid can never exist in an invalid shape.
type NewBidParams struct {
	Link               string
	Company            string
	Client             string
	Role               string
	Skills             SkillData
	LayerWeights       *LayerWeights
	JobDescriptionPath string
	ResumePath         string
	Origin             string
	Recruiter          string
	JDSpecificationID  *string
	OriginalBidID      *string
}

// NewBid is the single factory for bids, used by both the create-bid and the
// rebid workflows. The bid date is "today" at midnight local time.
func NewBid(p NewBidParams) (*Bid, error) {
	required := map[string]string{
		"link":                 p.Link,
		"company":              p.Company,
		"client":               p.Client,
		"role":                 p.Role,
		"job_description_path": p.JobDescriptionPath,
		"resume_path":          p.ResumePath,
	}
	for field, val := range required {
		if strings.TrimSpace(val) == "" {
			return nil, &ValidationError{Field: field, Message: "is required"}
		}
	}

	switch p.Origin {
	case BidOriginLinkedIn:
		if strings.TrimSpace(p.Recruiter) == "" {
			return nil, &ValidationError{Field: "recruiter", Message: "is required for LinkedIn bids"}
		}
	case BidOriginBid:
	default:
		return nil, &ValidationError{Field: "origin", Message: fmt.Sprintf("unknown origin %q", p.Origin)}
	}

	if err := p.Skills.Validate(); err != nil {
		return nil, err
	}
	if p.LayerWeights != nil {
		if err := p.LayerWeights.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	return &Bid{
		ID:                 uuid.NewString(),
		BidDate:            midnight(now),
		Link:               p.Link,
		Company:            p.Company,
		Client:             p.Client,
		Role:               p.Role,
		Skills:             p.Skills,
		LayerWeights:       p.LayerWeights,
		JobDescriptionPath: p.JobDescriptionPath,
		ResumePath:         p.ResumePath,
		Origin:             p.Origin,
		Recruiter:          p.Recruiter,
		JDSpecificationID:  p.JDSpecificationID,
		OriginalBidID:      p.OriginalBidID,
		Status:             BidStatusNew,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MarkAsSubmitted moves a freshly created bid to SUBMITTED.
func (b *Bid) MarkAsSubmitted() error {
	if b.Status != BidStatusNew {
		return &InvalidTransitionError{Entity: "bid", Action: "submit", Status: b.Status, Detail: "only NEW bids can be submitted"}
	}
	b.Status = BidStatusSubmitted
	return nil
}

// MarkAsRejected records a rejection reason. Calling it again while already
// REJECTED is allowed and just updates the reason.
func (b *Bid) MarkAsRejected(reason string) error {
	if b.Status == BidStatusInterviewStage || b.Status == BidStatusClosed {
		return &InvalidTransitionError{Entity: "bid", Action: "reject", Status: b.Status}
	}
	b.Status = BidStatusRejected
	b.RejectionReason = &reason
	return nil
}

// MarkInterviewStarted flags the bid as interview-winning. The flag is
// irreversible even if the interview later fails.
func (b *Bid) MarkInterviewStarted() error {
	if b.Status == BidStatusRejected || b.Status == BidStatusClosed {
		return &InvalidTransitionError{Entity: "bid", Action: "start interview for", Status: b.Status}
	}
	b.InterviewWinning = true
	b.Status = BidStatusInterviewStage
	return nil
}

func (b *Bid) MarkInterviewFailed() error {
	if b.Status != BidStatusInterviewStage {
		return &InvalidTransitionError{Entity: "bid", Action: "fail interview for", Status: b.Status, Detail: "bid is not in interview stage"}
	}
	b.Status = BidStatusInterviewFailed
	return nil
}

func (b *Bid) MarkAsClosed() error {
	if b.Status == BidStatusNew {
		return &InvalidTransitionError{Entity: "bid", Action: "close", Status: b.Status, Detail: "submit or reject it first"}
	}
	b.Status = BidStatusClosed
	return nil
}

// RestoreFromRejection is the escape hatch for reversing an auto-rejection.
// It refuses once the bid has ever reached the interview stage.
func (b *Bid) RestoreFromRejection() error {
	if b.Status != BidStatusRejected {
		return &InvalidTransitionError{Entity: "bid", Action: "restore", Status: b.Status, Detail: "only REJECTED bids can be restored"}
	}
	if b.InterviewWinning {
		return &InvalidTransitionError{Entity: "bid", Action: "restore", Status: b.Status, Detail: "bid already reached interview stage"}
	}
	b.RejectionReason = nil
	b.Status = BidStatusSubmitted
	return nil
}

// AttachWarning appends advisory text to the bid detail, newline separated.
// Repeated identical warnings are appended again, not deduplicated.
func (b *Bid) AttachWarning(text string) {
	if text == "" {
		return
	}
	if b.BidDetail == "" {
		b.BidDetail = text
		return
	}
	b.BidDetail = b.BidDetail + "\n" + text
}

// CanRebid reports whether a new bid may be created from this one. Only a
// resume-related rejection qualifies; ROLE_CLOSED and AUTO_REJECTED do not.
func (b *Bid) CanRebid() bool {
	return b.Status == BidStatusRejected &&
		!b.InterviewWinning &&
		b.RejectionReason != nil &&
		*b.RejectionReason == RejectionUnsatisfiedResume
}

// ShouldAutoReject reports whether the bid has been sitting in NEW or
// SUBMITTED for more than maxAgeDays, compared date-only.
func (b *Bid) ShouldAutoReject(asOf time.Time, maxAgeDays int) bool {
	if b.Status != BidStatusNew && b.Status != BidStatusSubmitted {
		return false
	}
	age := midnight(asOf).Sub(midnight(b.BidDate))
	return age > time.Duration(maxAgeDays)*24*time.Hour
}

// MarkAsRebid is set on the original bid once a rebid has been created from
// it. One-way flag.
func (b *Bid) MarkAsRebid() {
	b.HasBeenRebid = true
}

// BidFilter narrows FindAll results. Zero values mean "no filter".
type BidFilter struct {
	Status  string
	Company string
	Role    string
}

// BidRepository defines data access methods for bids
type BidRepository interface {
	Save(ctx context.Context, bid *Bid) error
	FindByID(ctx context.Context, id string) (*Bid, error)
	FindAll(ctx context.Context, filter *BidFilter) ([]Bid, error)
	FindByCompanyAndRole(ctx context.Context, company, role string) ([]Bid, error)
	FindByLink(ctx context.Context, link string) (*Bid, error)
	Update(ctx context.Context, bid *Bid) error
	Delete(ctx context.Context, id string) error
}

// BidUsecase defines query and transition operations on existing bids.
// Creation goes through CreateBidUsecase and RebidUsecase.
type BidUsecase interface {
	GetBid(ctx context.Context, id string) (*Bid, error)
	ListBids(ctx context.Context, filter *BidFilter) ([]Bid, error)
	SubmitBid(ctx context.Context, id string) (*Bid, error)
	RejectBid(ctx context.Context, id, reason string) (*Bid, error)
	CloseBid(ctx context.Context, id string) (*Bid, error)
	RestoreBid(ctx context.Context, id string) (*Bid, error)
	AutoRejectStale(ctx context.Context) (int, error)
}

package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// FailureRecord is one failed interview remembered against a (company, role)
// pair.
type FailureRecord struct {
	InterviewID string    `json:"interview_id"`
	Date        time.Time `json:"date"`
	Recruiter   string    `json:"recruiter"`
	Attendees   []string  `json:"attendees"`
}

// CompanyRoleHistory accumulates interview failures for one (company, role)
// pair. Entries are append-only.
type CompanyRoleHistory struct {
	Company  string          `json:"company"`
	Role     string          `json:"role"`
	Failures []FailureRecord `json:"failures"`
}

// HistoryKey normalizes a (company, role) pair into the case-insensitive
// lookup key used by every CompanyHistory implementation.
func HistoryKey(company, role string) string {
	return strings.ToLower(company) + ":" + strings.ToLower(role)
}

// AllRecruiters returns the deduplicated recruiters across all recorded
// failures. Order follows first appearance.
func (h *CompanyRoleHistory) AllRecruiters() []string {
	recruiters := lo.Map(h.Failures, func(f FailureRecord, _ int) string { return f.Recruiter })
	return lo.Uniq(lo.Filter(recruiters, func(r string, _ int) bool { return r != "" }))
}

// AllAttendees returns the deduplicated attendees across all recorded
// failures.
func (h *CompanyRoleHistory) AllAttendees() []string {
	attendees := lo.FlatMap(h.Failures, func(f FailureRecord, _ int) []string { return f.Attendees })
	return lo.Uniq(lo.Filter(attendees, func(a string, _ int) bool { return a != "" }))
}

// WarningMessage builds the human-readable summary attached to new bids for
// a company the user already failed at. Empty string when there is nothing
// to warn about.
func (h *CompanyRoleHistory) WarningMessage() string {
	if h == nil || len(h.Failures) == 0 {
		return ""
	}
	word := "failures"
	if len(h.Failures) == 1 {
		word = "failure"
	}
	msg := fmt.Sprintf("Warning: %d previous interview %s at %s for %s.", len(h.Failures), word, h.Company, h.Role)
	if recruiters := h.AllRecruiters(); len(recruiters) > 0 {
		msg += " Recruiters: " + strings.Join(recruiters, ", ") + "."
	}
	if attendees := h.AllAttendees(); len(attendees) > 0 {
		msg += " Attendees: " + strings.Join(attendees, ", ") + "."
	}
	return msg
}

// Clone returns a deep copy so callers can never mutate stored history
func (h *CompanyRoleHistory) Clone() *CompanyRoleHistory {
	if h == nil {
		return nil
	}
	out := &CompanyRoleHistory{Company: h.Company, Role: h.Role}
	for _, f := range h.Failures {
		out.Failures = append(out.Failures, FailureRecord{
			InterviewID: f.InterviewID,
			Date:        f.Date,
			Recruiter:   f.Recruiter,
			Attendees:   append([]string(nil), f.Attendees...),
		})
	}
	return out
}

// CompanyHistory is the append-only store of interview failures keyed by
// (company, role), case-insensitive on both. Lookups return deep copies;
// entries are never removed.
type CompanyHistory interface {
	RecordFailure(ctx context.Context, company, role string, record FailureRecord) error
	GetHistory(ctx context.Context, company, role string) (*CompanyRoleHistory, error)
	HasFailures(ctx context.Context, company, role string) (bool, error)
	GetWarningMessage(ctx context.Context, company, role string) (string, error)
}

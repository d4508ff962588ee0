package domain

import (
	"fmt"
	"strings"
)

// Duplication warning type constants
const (
	DuplicationLinkMatch        = "LINK_MATCH"
	DuplicationCompanyRoleMatch = "COMPANY_ROLE_MATCH"
)

// DuplicationWarning flags that a new bid resembles an existing one. Purely
// advisory; callers decide whether to block on it.
type DuplicationWarning struct {
	Type          string `json:"type"`
	ExistingBidID string `json:"existing_bid_id"`
	Message       string `json:"message"`
}

// BidCandidate is the portion of a not-yet-created bid the duplication
// policy compares against existing ones.
type BidCandidate struct {
	Link    string
	Company string
	Role    string
}

// CheckDuplication compares a bid candidate against every existing bid and
// emits a warning per matching predicate: exact link equality, and
// case-insensitive equality of both company and role together. One existing
// bid can produce both warnings. Never fails; empty input yields no
// warnings.
func CheckDuplication(candidate BidCandidate, existing []Bid) []DuplicationWarning {
	warnings := []DuplicationWarning{}
	for _, bid := range existing {
		if candidate.Link != "" && candidate.Link == bid.Link {
			warnings = append(warnings, DuplicationWarning{
				Type:          DuplicationLinkMatch,
				ExistingBidID: bid.ID,
				Message:       fmt.Sprintf("a bid with the same link already exists (bid %s)", bid.ID),
			})
		}
		if strings.EqualFold(candidate.Company, bid.Company) && strings.EqualFold(candidate.Role, bid.Role) {
			warnings = append(warnings, DuplicationWarning{
				Type:          DuplicationCompanyRoleMatch,
				ExistingBidID: bid.ID,
				Message:       fmt.Sprintf("a bid for %s / %s already exists (bid %s)", bid.Company, bid.Role, bid.ID),
			})
		}
	}
	return warnings
}

// DuplicateBidError is raised by the create-bid workflow when any
// duplication warning exists. The message concatenates every warning.
type DuplicateBidError struct {
	Warnings []DuplicationWarning
}

func (e *DuplicateBidError) Error() string {
	messages := make([]string, 0, len(e.Warnings))
	for _, w := range e.Warnings {
		messages = append(messages, w.Message)
	}
	return "duplicate bid: " + strings.Join(messages, "; ")
}

package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// EligibilityResult is the advisory allow/forbid decision for scheduling an
// interview, with a human-readable reason.
type EligibilityResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// IneligibleError aborts interview scheduling when the eligibility policy
// forbids the attempt.
type IneligibleError struct {
	Result EligibilityResult
}

func (e *IneligibleError) Error() string {
	return "interview not allowed: " + e.Result.Reason
}

// CheckEligibility decides whether a new interview attempt at (company,
// role) is allowed given the recorded failure history. history may be nil
// when nothing was ever recorded. Priority order:
//
//  1. no recorded failures            -> allowed
//  2. recruiter never seen before     -> allowed
//  3. every attendee is new           -> allowed
//  4. same recruiter + overlap        -> forbidden
func CheckEligibility(company, role, recruiter string, attendees []string, history *CompanyRoleHistory) EligibilityResult {
	if history == nil || len(history.Failures) == 0 {
		return EligibilityResult{
			Allowed: true,
			Reason:  fmt.Sprintf("no previous failures at %s for %s", company, role),
		}
	}

	prevRecruiters := history.AllRecruiters()
	if !lo.Contains(prevRecruiters, recruiter) {
		return EligibilityResult{
			Allowed: true,
			Reason: fmt.Sprintf("new recruiter %s; previous recruiters were: %s",
				recruiter, strings.Join(prevRecruiters, ", ")),
		}
	}

	prevAttendees := history.AllAttendees()
	overlap := lo.Intersect(attendees, prevAttendees)
	if len(overlap) == 0 {
		return EligibilityResult{
			Allowed: true,
			Reason: fmt.Sprintf("all new attendees; previous attendees were: %s",
				strings.Join(prevAttendees, ", ")),
		}
	}

	attendeeWord := "overlapping attendees"
	if len(overlap) == 1 {
		attendeeWord = "overlapping attendee"
	}
	return EligibilityResult{
		Allowed: false,
		Reason: fmt.Sprintf("recruiter %s already led a failed interview at %s for %s with %s %s",
			recruiter, company, role, attendeeWord, strings.Join(overlap, ", ")),
	}
}

package domain_test

import (
	"testing"

	"go-bidtrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func historyWith(failures ...domain.FailureRecord) *domain.CompanyRoleHistory {
	return &domain.CompanyRoleHistory{Company: "Acme", Role: "Eng", Failures: failures}
}

func TestCheckEligibility(t *testing.T) {
	t.Run("No history allows", func(t *testing.T) {
		result := domain.CheckEligibility("Acme", "Eng", "Bob", []string{"Sue"}, nil)
		assert.True(t, result.Allowed)
		assert.Contains(t, result.Reason, "no previous failures")
	})

	t.Run("Empty history allows", func(t *testing.T) {
		result := domain.CheckEligibility("Acme", "Eng", "Bob", []string{"Sue"}, historyWith())
		assert.True(t, result.Allowed)
	})

	t.Run("New recruiter allows and names previous ones", func(t *testing.T) {
		history := historyWith(domain.FailureRecord{Recruiter: "Alice", Attendees: []string{"Sue"}})
		result := domain.CheckEligibility("Acme", "Eng", "Bob", []string{"Sue"}, history)
		assert.True(t, result.Allowed)
		assert.Contains(t, result.Reason, "new recruiter")
		assert.Contains(t, result.Reason, "Alice")
	})

	t.Run("Same recruiter but all new attendees allows", func(t *testing.T) {
		history := historyWith(domain.FailureRecord{Recruiter: "Bob", Attendees: []string{"Sue", "Joe"}})
		result := domain.CheckEligibility("Acme", "Eng", "Bob", []string{"Maria"}, history)
		assert.True(t, result.Allowed)
		assert.Contains(t, result.Reason, "all new attendees")
		assert.Contains(t, result.Reason, "Sue")
		assert.Contains(t, result.Reason, "Joe")
	})

	t.Run("Same recruiter with one overlapping attendee forbids, singular", func(t *testing.T) {
		history := historyWith(domain.FailureRecord{Recruiter: "Bob", Attendees: []string{"Sue"}})
		result := domain.CheckEligibility("Acme", "Eng", "Bob", []string{"Sue"}, history)
		assert.False(t, result.Allowed)
		assert.Contains(t, result.Reason, "Bob")
		assert.Contains(t, result.Reason, "Sue")
		assert.Contains(t, result.Reason, "overlapping attendee ")
	})

	t.Run("Multiple overlapping attendees use plural wording", func(t *testing.T) {
		history := historyWith(domain.FailureRecord{Recruiter: "Bob", Attendees: []string{"Sue", "Joe", "Maria"}})
		result := domain.CheckEligibility("Acme", "Eng", "Bob", []string{"Sue", "Joe"}, history)
		assert.False(t, result.Allowed)
		assert.Contains(t, result.Reason, "overlapping attendees")
	})

	t.Run("History with empty attendee lists trivially allows new attendees", func(t *testing.T) {
		history := historyWith(domain.FailureRecord{Recruiter: "Bob"})
		result := domain.CheckEligibility("Acme", "Eng", "Bob", []string{"Sue"}, history)
		assert.True(t, result.Allowed)
	})
}

package domain_test

import (
	"testing"

	"go-bidtrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHistoryKey(t *testing.T) {
	assert.Equal(t, "acme:eng", domain.HistoryKey("Acme", "Eng"))
	assert.Equal(t, domain.HistoryKey("ACME", "ENG"), domain.HistoryKey("acme", "eng"))
}

func TestCompanyRoleHistoryAggregates(t *testing.T) {
	history := &domain.CompanyRoleHistory{
		Company: "Acme",
		Role:    "Eng",
		Failures: []domain.FailureRecord{
			{Recruiter: "Bob", Attendees: []string{"Sue", "Joe"}},
			{Recruiter: "Bob", Attendees: []string{"Sue", "Maria"}},
			{Recruiter: "Alice", Attendees: nil},
		},
	}

	assert.ElementsMatch(t, []string{"Bob", "Alice"}, history.AllRecruiters())
	assert.ElementsMatch(t, []string{"Sue", "Joe", "Maria"}, history.AllAttendees())
}

func TestWarningMessage(t *testing.T) {
	t.Run("Nil or empty history gives empty string", func(t *testing.T) {
		var history *domain.CompanyRoleHistory
		assert.Empty(t, history.WarningMessage())
		assert.Empty(t, (&domain.CompanyRoleHistory{}).WarningMessage())
	})

	t.Run("Singular wording for one failure", func(t *testing.T) {
		history := &domain.CompanyRoleHistory{
			Company:  "Acme",
			Role:     "Eng",
			Failures: []domain.FailureRecord{{Recruiter: "Bob", Attendees: []string{"Sue"}}},
		}
		msg := history.WarningMessage()
		assert.Contains(t, msg, "1 previous interview failure ")
		assert.Contains(t, msg, "Acme")
		assert.Contains(t, msg, "Bob")
		assert.Contains(t, msg, "Sue")
	})

	t.Run("Plural wording for several failures", func(t *testing.T) {
		history := &domain.CompanyRoleHistory{
			Company: "Acme",
			Role:    "Eng",
			Failures: []domain.FailureRecord{
				{Recruiter: "Bob", Attendees: []string{"Sue"}},
				{Recruiter: "Alice", Attendees: []string{"Joe"}},
			},
		}
		msg := history.WarningMessage()
		assert.Contains(t, msg, "2 previous interview failures")
		assert.Contains(t, msg, "Bob, Alice")
		assert.Contains(t, msg, "Sue, Joe")
	})
}

func TestCompanyRoleHistoryClone(t *testing.T) {
	original := &domain.CompanyRoleHistory{
		Company:  "Acme",
		Role:     "Eng",
		Failures: []domain.FailureRecord{{Recruiter: "Bob", Attendees: []string{"Sue"}}},
	}

	clone := original.Clone()
	clone.Failures[0].Recruiter = "mutated"
	clone.Failures[0].Attendees[0] = "mutated"

	assert.Equal(t, "Bob", original.Failures[0].Recruiter)
	assert.Equal(t, []string{"Sue"}, original.Failures[0].Attendees)
}

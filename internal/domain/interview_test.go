package domain_test

import (
	"testing"

	"go-bidtrack-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledInterview(t *testing.T) *domain.Interview {
	bidID := "bid-1"
	iv, err := domain.NewInterview(domain.NewInterviewParams{
		Base:      domain.InterviewBaseBid,
		Company:   "Acme",
		Client:    "Acme Client",
		Role:      "Backend Engineer",
		Type:      domain.InterviewTypeHR,
		Recruiter: "Bob",
		Attendees: []string{"Sue"},
		BidID:     &bidID,
	})
	require.NoError(t, err)
	return iv
}

func TestNewInterview(t *testing.T) {
	t.Run("Bid base requires a bid id", func(t *testing.T) {
		_, err := domain.NewInterview(domain.NewInterviewParams{
			Base:      domain.InterviewBaseBid,
			Type:      domain.InterviewTypeHR,
			Recruiter: "Bob",
		})
		assert.Error(t, err)
	})

	t.Run("LinkedIn-chat base must not carry a bid id", func(t *testing.T) {
		bidID := "bid-1"
		_, err := domain.NewInterview(domain.NewInterviewParams{
			Base:      domain.InterviewBaseLinkedInChat,
			Type:      domain.InterviewTypeHR,
			Recruiter: "Bob",
			BidID:     &bidID,
		})
		assert.Error(t, err)
	})

	t.Run("Unknown type is rejected", func(t *testing.T) {
		_, err := domain.NewInterview(domain.NewInterviewParams{
			Base:      domain.InterviewBaseLinkedInChat,
			Type:      "COFFEE",
			Recruiter: "Bob",
		})
		assert.Error(t, err)
	})

	t.Run("Starts SCHEDULED", func(t *testing.T) {
		iv := scheduledInterview(t)
		assert.Equal(t, domain.InterviewStatusScheduled, iv.Status)
		assert.False(t, iv.NextScheduled)
	})
}

func TestInterviewStateMachine(t *testing.T) {
	t.Run("Complete success is terminal", func(t *testing.T) {
		iv := scheduledInterview(t)
		require.NoError(t, iv.MarkAsCompleted(true))
		assert.Equal(t, domain.InterviewStatusCompletedSuccess, iv.Status)
		assert.False(t, iv.IsFailed())

		err := iv.MarkAsCompleted(false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already completed successfully")
	})

	t.Run("Complete failure is terminal with its own message", func(t *testing.T) {
		iv := scheduledInterview(t)
		require.NoError(t, iv.MarkAsCompleted(false))
		assert.True(t, iv.IsFailed())

		err := iv.MarkAsCompleted(true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already completed as a failure")
	})

	t.Run("Cancelled interviews cannot complete", func(t *testing.T) {
		iv := scheduledInterview(t)
		require.NoError(t, iv.MarkAsCancelled())
		err := iv.MarkAsCompleted(true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cancelled")
	})

	t.Run("Cancel has distinct messages per terminal state", func(t *testing.T) {
		succeeded := scheduledInterview(t)
		require.NoError(t, succeeded.MarkAsCompleted(true))
		assert.Contains(t, succeeded.MarkAsCancelled().Error(), "already completed successfully")

		failed := scheduledInterview(t)
		require.NoError(t, failed.MarkAsCompleted(false))
		assert.Contains(t, failed.MarkAsCancelled().Error(), "already completed as a failure")

		cancelled := scheduledInterview(t)
		require.NoError(t, cancelled.MarkAsCancelled())
		assert.Contains(t, cancelled.MarkAsCancelled().Error(), "already cancelled")
	})
}

func TestInterviewFailureInfo(t *testing.T) {
	iv := scheduledInterview(t)
	info := iv.GetFailureInfo()
	assert.Equal(t, "Acme", info.Company)
	assert.Equal(t, "Backend Engineer", info.Role)
	assert.Equal(t, "Bob", info.Recruiter)
	assert.Equal(t, []string{"Sue"}, info.Attendees)

	// defensive copy
	info.Attendees[0] = "mutated"
	assert.Equal(t, []string{"Sue"}, iv.Attendees)
}

func TestInterviewUpdateDetail(t *testing.T) {
	iv := scheduledInterview(t)
	assert.Error(t, iv.UpdateDetail("   "))
	assert.NoError(t, iv.UpdateDetail("went well"))
	assert.Equal(t, "went well", iv.Detail)
}

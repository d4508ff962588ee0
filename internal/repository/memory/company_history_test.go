package memory_test

import (
	"context"
	"testing"
	"time"

	"go-bidtrack-backend/internal/domain"
	"go-bidtrack-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyHistoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Lookups are case-insensitive", func(t *testing.T) {
		store := memory.NewCompanyHistory()
		record := domain.FailureRecord{
			InterviewID: "iv-1",
			Date:        time.Now(),
			Recruiter:   "Bob",
			Attendees:   []string{"Sue"},
		}
		require.NoError(t, store.RecordFailure(ctx, "Acme", "Eng", record))

		history, err := store.GetHistory(ctx, "ACME", "eng")
		require.NoError(t, err)
		require.NotNil(t, history)
		require.Len(t, history.Failures, 1)
		assert.Equal(t, "iv-1", history.Failures[0].InterviewID)

		has, err := store.HasFailures(ctx, "aCmE", "ENG")
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("Unknown pair returns nil and no failures", func(t *testing.T) {
		store := memory.NewCompanyHistory()
		history, err := store.GetHistory(ctx, "Nobody", "Nothing")
		require.NoError(t, err)
		assert.Nil(t, history)

		has, err := store.HasFailures(ctx, "Nobody", "Nothing")
		require.NoError(t, err)
		assert.False(t, has)

		msg, err := store.GetWarningMessage(ctx, "Nobody", "Nothing")
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("Records accumulate and are never removed", func(t *testing.T) {
		store := memory.NewCompanyHistory()
		for i := 0; i < 3; i++ {
			require.NoError(t, store.RecordFailure(ctx, "Acme", "Eng", domain.FailureRecord{
				InterviewID: "iv",
				Recruiter:   "Bob",
			}))
		}
		history, err := store.GetHistory(ctx, "acme", "eng")
		require.NoError(t, err)
		assert.Len(t, history.Failures, 3)
	})

	t.Run("Returned history is a defensive copy", func(t *testing.T) {
		store := memory.NewCompanyHistory()
		require.NoError(t, store.RecordFailure(ctx, "Acme", "Eng", domain.FailureRecord{
			Recruiter: "Bob",
			Attendees: []string{"Sue"},
		}))

		history, err := store.GetHistory(ctx, "Acme", "Eng")
		require.NoError(t, err)
		history.Failures[0].Attendees[0] = "mutated"
		history.Failures = nil

		again, err := store.GetHistory(ctx, "Acme", "Eng")
		require.NoError(t, err)
		require.Len(t, again.Failures, 1)
		assert.Equal(t, []string{"Sue"}, again.Failures[0].Attendees)
	})

	t.Run("Recorded attendees are copied from the caller", func(t *testing.T) {
		store := memory.NewCompanyHistory()
		attendees := []string{"Sue"}
		require.NoError(t, store.RecordFailure(ctx, "Acme", "Eng", domain.FailureRecord{
			Recruiter: "Bob",
			Attendees: attendees,
		}))
		attendees[0] = "mutated"

		history, err := store.GetHistory(ctx, "Acme", "Eng")
		require.NoError(t, err)
		assert.Equal(t, []string{"Sue"}, history.Failures[0].Attendees)
	})

	t.Run("Warning message summarizes failures", func(t *testing.T) {
		store := memory.NewCompanyHistory()
		require.NoError(t, store.RecordFailure(ctx, "Acme", "Eng", domain.FailureRecord{
			Recruiter: "Bob",
			Attendees: []string{"Sue"},
		}))
		msg, err := store.GetWarningMessage(ctx, "ACME", "ENG")
		require.NoError(t, err)
		assert.Contains(t, msg, "1 previous interview failure")
		assert.Contains(t, msg, "Bob")
	})
}

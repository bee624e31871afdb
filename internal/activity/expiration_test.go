package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/renthub/backend/internal/contracts"
)

func testLease(start, end time.Time) *contracts.Lease {
	tenantID := "t-1"
	return &contracts.Lease{
		ID:         "lease-1",
		PropertyID: "p-1",
		TenantID:   &tenantID,
		StartDate:  start,
		EndDate:    end,
		Status:     contracts.LeaseStatusActive,
	}
}

var testNames = PartyNames{Property: "Sunset Villa", Tenant: "Kim Minji"}

func TestExpirationReminders_ThresholdIndependence(t *testing.T) {
	// End date 45 days out: the 90-day reminder has already elapsed, the
	// 30-day and 7-day reminders are still ahead.
	today := date(2025, 1, 10)
	end := today.AddDate(0, 0, 45) // 2025-02-24

	got := ExpirationReminders(testLease(date(2024, 2, 24), end), testNames, today)
	require.Len(t, got, 2)

	medium, high := got[0], got[1]

	assert.Equal(t, contracts.ActivityPriorityMedium, medium.Priority)
	assert.Equal(t, date(2025, 1, 25), medium.Date, "30-day reminder lands 15 days from today")

	assert.Equal(t, contracts.ActivityPriorityHigh, high.Priority)
	assert.Equal(t, date(2025, 2, 17), high.Date, "7-day reminder lands 38 days from today")

	for _, a := range got {
		assert.Equal(t, contracts.ActivityTypeContractExpiration, a.Type)
		assert.Equal(t, contracts.ActivityStatusPending, a.Status)
		assert.Equal(t, "lease-1", a.RelatedID)
	}
}

func TestExpirationReminders_ElapsedThresholdsExcluded(t *testing.T) {
	// End date 20 days out: only the 7-day reminder is still ahead of
	// today; the 90-day and 30-day reminders are in the past.
	today := date(2025, 1, 10)
	end := today.AddDate(0, 0, 20) // 2025-01-30

	got := ExpirationReminders(testLease(date(2024, 1, 30), end), testNames, today)
	require.Len(t, got, 1)

	assert.Equal(t, contracts.ActivityPriorityHigh, got[0].Priority)
	assert.Equal(t, date(2025, 1, 23), got[0].Date)
}

func TestExpirationReminders_AllElapsed(t *testing.T) {
	// End date 5 days out: every reminder date, including the 7-day one
	// (two days ago), is strictly in the past.
	today := date(2025, 1, 10)
	end := today.AddDate(0, 0, 5)

	got := ExpirationReminders(testLease(date(2024, 1, 15), end), testNames, today)
	assert.Empty(t, got)
}

func TestExpirationReminders_SameDayBoundaryIncluded(t *testing.T) {
	// A reminder date equal to today is included, not excluded.
	today := date(2025, 1, 10)
	end := today.AddDate(0, 0, 7)

	got := ExpirationReminders(testLease(date(2024, 1, 17), end), testNames, today)
	require.Len(t, got, 1)

	assert.Equal(t, contracts.ActivityPriorityHigh, got[0].Priority)
	assert.True(t, sameDay(got[0].Date, today))
}

func TestExpirationReminders_SameDayIgnoresTimeOfDay(t *testing.T) {
	// Day-granularity equality: a reminder this morning still counts
	// when "today" carries a later clock time.
	today := time.Date(2025, 1, 10, 18, 30, 0, 0, time.UTC)
	end := time.Date(2025, 1, 17, 9, 0, 0, 0, time.UTC)

	got := ExpirationReminders(testLease(date(2024, 1, 17), end), testNames, today)
	assert.Len(t, got, 1)
}

func TestExpirationReminders_AllThresholdsAhead(t *testing.T) {
	today := date(2025, 1, 10)
	end := today.AddDate(0, 0, 120)

	got := ExpirationReminders(testLease(date(2024, 5, 10), end), testNames, today)
	require.Len(t, got, 3)

	// Emitted in threshold order: low, medium, high
	assert.Equal(t, contracts.ActivityPriorityLow, got[0].Priority)
	assert.Equal(t, contracts.ActivityPriorityMedium, got[1].Priority)
	assert.Equal(t, contracts.ActivityPriorityHigh, got[2].Priority)
}

func TestExpirationReminders_Description(t *testing.T) {
	today := date(2024, 10, 1)
	end := date(2024, 12, 31)

	got := ExpirationReminders(testLease(date(2024, 1, 1), end), testNames, today)
	require.NotEmpty(t, got)

	assert.Contains(t, got[0].Description, "Kim Minji")
	assert.Contains(t, got[0].Description, "Sunset Villa")
	assert.Contains(t, got[0].Description, "2024-12-31")
	assert.Equal(t, "Sunset Villa", got[0].PropertyName)
	assert.Equal(t, "Kim Minji", got[0].TenantName)
}

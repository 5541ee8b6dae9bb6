package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotplan/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func allDaysSlot(startH, startM, endH, endM int) domain.ClosedTimeSlot {
	return domain.ClosedTimeSlot{
		StartHour: startH, StartMinute: startM,
		EndHour: endH, EndMinute: endM,
		Scope: domain.ScopeAllDays,
	}
}

func TestResolveAvailability_AllDaysSlots(t *testing.T) {
	slots := []domain.ClosedTimeSlot{
		allDaysSlot(0, 0, 8, 0),
		allDaysSlot(12, 0, 13, 0),
		allDaysSlot(20, 0, 24, 0),
	}

	blocks := ResolveAvailability(mustDate(t, "2024-02-15"), slots)

	require.Len(t, blocks, 2)
	assert.Equal(t, 480, blocks[0].Start)  // 08:00
	assert.Equal(t, 720, blocks[0].End)    // 12:00
	assert.Equal(t, 780, blocks[1].Start)  // 13:00
	assert.Equal(t, 1200, blocks[1].End)   // 20:00
}

func TestResolveAvailability_WeekdayScopeFilters(t *testing.T) {
	// 2024-02-17 is a Saturday (weekday index 5), 2024-02-15 a Thursday (3).
	slots := []domain.ClosedTimeSlot{
		{
			StartHour: 8, EndHour: 10,
			Scope:    domain.ScopeWeekdays,
			Weekdays: []int{5, 6},
		},
	}

	saturday := ResolveAvailability(mustDate(t, "2024-02-17"), slots)
	require.Len(t, saturday, 2)
	assert.Equal(t, 0, saturday[0].Start)
	assert.Equal(t, 480, saturday[0].End)
	assert.Equal(t, 600, saturday[1].Start)

	thursday := ResolveAvailability(mustDate(t, "2024-02-15"), slots)
	require.Len(t, thursday, 1)
	assert.Equal(t, minutesPerDay, thursday[0].RemainingMinutes(), "slot must not apply on a Thursday")
}

func TestResolveAvailability_SpecificDateScope(t *testing.T) {
	slots := []domain.ClosedTimeSlot{
		{
			StartHour: 9, EndHour: 17,
			Scope:        domain.ScopeSpecificDate,
			SpecificDate: "2024-02-20",
		},
	}

	match := ResolveAvailability(mustDate(t, "2024-02-20"), slots)
	require.Len(t, match, 2)

	other := ResolveAvailability(mustDate(t, "2024-02-21"), slots)
	require.Len(t, other, 1)
	assert.Equal(t, minutesPerDay, other[0].RemainingMinutes())
}

func TestResolveAvailability_ScopesPoolBeforeMerging(t *testing.T) {
	// An all-days slot and a specific-date slot that overlap on the date
	// must merge into one closed run, leaving a single gap after it.
	slots := []domain.ClosedTimeSlot{
		allDaysSlot(0, 0, 8, 0),
		{
			StartHour: 7, EndHour: 10,
			Scope:        domain.ScopeSpecificDate,
			SpecificDate: "2024-02-20",
		},
	}

	blocks := ResolveAvailability(mustDate(t, "2024-02-20"), slots)
	require.Len(t, blocks, 1)
	assert.Equal(t, 600, blocks[0].Start) // 10:00
	assert.Equal(t, minutesPerDay, blocks[0].End)
}

func TestResolveAvailability_FullyClosedDay(t *testing.T) {
	blocks := ResolveAvailability(mustDate(t, "2024-02-15"), []domain.ClosedTimeSlot{
		allDaysSlot(0, 0, 24, 0),
	})
	assert.Empty(t, blocks)
}

func TestLongestBlockMinutes(t *testing.T) {
	slots := []domain.ClosedTimeSlot{
		allDaysSlot(0, 0, 8, 0),
		allDaysSlot(12, 0, 13, 0),
		allDaysSlot(20, 0, 24, 0),
	}

	assert.Equal(t, 420, LongestBlockMinutes(mustDate(t, "2024-02-15"), slots)) // 13:00-20:00

	closed := []domain.ClosedTimeSlot{allDaysSlot(0, 0, 24, 0)}
	assert.Equal(t, 0, LongestBlockMinutes(mustDate(t, "2024-02-15"), closed))
}

func TestMondayWeekday(t *testing.T) {
	assert.Equal(t, 0, domain.MondayWeekday(mustDate(t, "2024-02-19"))) // Monday
	assert.Equal(t, 3, domain.MondayWeekday(mustDate(t, "2024-02-15"))) // Thursday
	assert.Equal(t, 6, domain.MondayWeekday(mustDate(t, "2024-02-18"))) // Sunday
}

package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotplan/internal/domain"
)

func randomSlots(rng *rand.Rand) []domain.ClosedTimeSlot {
	n := rng.Intn(5)
	slots := make([]domain.ClosedTimeSlot, 0, n)
	for i := 0; i < n; i++ {
		startMin := rng.Intn(minutesPerDay - 30)
		endMin := startMin + 30 + rng.Intn(minutesPerDay-startMin-30)
		slot := domain.ClosedTimeSlot{
			StartHour: startMin / 60, StartMinute: startMin % 60,
			EndHour: endMin / 60, EndMinute: endMin % 60,
		}
		switch rng.Intn(3) {
		case 0:
			slot.Scope = domain.ScopeAllDays
		case 1:
			slot.Scope = domain.ScopeWeekdays
			slot.Weekdays = []int{rng.Intn(7)}
		default:
			slot.Scope = domain.ScopeSpecificDate
			slot.SpecificDate = time.Date(2024, 2, 15+rng.Intn(20), 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		}
		slots = append(slots, slot)
	}
	return slots
}

func randomTasks(rng *rand.Rand) []domain.Task {
	n := rng.Intn(6) + 1
	tasks := make([]domain.Task, 0, n)
	for i := 0; i < n; i++ {
		perSession := 0.5 * float64(rng.Intn(8)+1) // 0.5h .. 4h
		total := perSession * float64(rng.Intn(5)+1)
		tasks = append(tasks, domain.Task{
			ID:              i + 1,
			Name:            fmt.Sprintf("task-%d", i+1),
			TotalHours:      total,
			HoursPerSession: perSession,
			Priority:        domain.Priority(rng.Intn(3) + 1),
			DeadlineDay:     rng.Intn(14) + 1,
		})
	}
	return tasks
}

// TestResolveAvailability_Invariants property-tests the availability
// contract: blocks are ordered, non-overlapping, and together with the
// merged applicable closures tile [00:00, 24:00) exactly.
func TestResolveAvailability_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		slots := randomSlots(rng)
		date := time.Date(2024, 2, 15+rng.Intn(20), 0, 0, 0, 0, time.UTC)

		blocks := ResolveAvailability(date, slots)

		freeTotal := 0
		for i, b := range blocks {
			assert.Less(t, b.Start, b.End, "trial %d: block %d must be non-empty", trial, i)
			if i > 0 {
				assert.GreaterOrEqual(t, b.Start, blocks[i-1].End,
					"trial %d: blocks must be ordered and non-overlapping", trial)
			}
			freeTotal += b.RemainingMinutes()
		}

		var closed []Interval
		for j := range slots {
			if slots[j].AppliesTo(date) {
				closed = append(closed, Interval{Start: slots[j].StartMinutes(), End: slots[j].EndMinutes()})
			}
		}
		closedTotal := 0
		for _, iv := range MergeIntervals(closed) {
			closedTotal += iv.Duration()
		}

		assert.Equal(t, minutesPerDay, freeTotal+closedTotal,
			"trial %d: free and closed time must tile the day", trial)
	}
}

// TestSchedule_Invariants property-tests the full run: progress is
// monotone and bounded, sessions sit inside free time and respect the
// buffer, and reruns are byte-identical.
func TestSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		slots := randomSlots(rng)
		tasks := randomTasks(rng)
		cfg := domain.SchedulerConfig{
			BufferMinutes:          rng.Intn(4) * 15,
			MaxNewTaskStartsPerDay: rng.Intn(3) + 1,
			StartDate:              "2024-02-15",
			HorizonDays:            rng.Intn(20) + 1,
		}

		result, err := Schedule(tasks, slots, cfg, testNow)
		require.NoError(t, err, "trial %d", trial)

		completed := make(map[int]float64)
		totals := make(map[int]float64)
		for _, task := range tasks {
			totals[task.ID] = task.TotalHours
		}

		for _, day := range result.Days {
			prevEnd := -1
			for _, s := range day.Sessions {
				assert.GreaterOrEqual(t, s.StartMinutes, 0, "trial %d", trial)
				assert.LessOrEqual(t, s.EndMinutes, minutesPerDay, "trial %d", trial)
				assert.Less(t, s.StartMinutes, s.EndMinutes, "trial %d", trial)
				assert.GreaterOrEqual(t, s.StartMinutes, prevEnd,
					"trial %d day %d: sessions must not overlap", trial, day.DayNumber)
				prevEnd = s.EndMinutes

				completed[s.TaskID] += s.DurationHours
				assert.LessOrEqual(t, completed[s.TaskID], totals[s.TaskID]+1e-9,
					"trial %d: task %d progress must never exceed its target", trial, s.TaskID)
			}
		}

		for i, task := range result.Tasks {
			assert.GreaterOrEqual(t, task.HoursCompleted, tasks[i].HoursCompleted,
				"trial %d: progress must be non-decreasing", trial)
			assert.LessOrEqual(t, task.HoursCompleted, task.TotalHours,
				"trial %d: progress must be bounded by the target", trial)
		}

		rerun, err := Schedule(tasks, slots, cfg, testNow)
		require.NoError(t, err)
		assert.Equal(t, result, rerun, "trial %d: runs must be deterministic", trial)
	}
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotplan/internal/domain"
	"slotplan/internal/testutil"
)

func TestTaskService_CreateDefaultsPriority(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := &domain.Task{Name: "report", TotalHours: 6, HoursPerSession: 3, DeadlineDay: 3}
	require.NoError(t, env.tasks.Create(ctx, task))

	got, err := env.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTaskService_CreateRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)

	err := env.tasks.Create(context.Background(), &domain.Task{Name: "bad", TotalHours: -1, HoursPerSession: 1, DeadlineDay: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_hours")
}

func TestTaskService_LogHours(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := testutil.NewTestTask("report", 6, 3)
	require.NoError(t, env.tasks.Create(ctx, task))

	got, err := env.tasks.LogHours(ctx, task.ID, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.HoursCompleted)
	assert.True(t, got.InProgress)

	stored, err := env.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.5, stored.HoursCompleted)
}

func TestTaskService_LogHoursClampsAndCompletes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := testutil.NewTestTask("report", 6, 3)
	require.NoError(t, env.tasks.Create(ctx, task))

	got, err := env.tasks.LogHours(ctx, task.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.HoursCompleted, "progress is clamped to the target")
	assert.True(t, got.IsComplete())
	assert.False(t, got.InProgress, "completion clears the in-progress flag")
}

func TestTaskService_LogHoursRejectsNonPositive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := testutil.NewTestTask("report", 6, 3)
	require.NoError(t, env.tasks.Create(ctx, task))

	_, err := env.tasks.LogHours(ctx, task.ID, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestSlotService_CreateDefaultsScope(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	slot := &domain.ClosedTimeSlot{StartHour: 0, EndHour: 8}
	require.NoError(t, env.slots.Create(ctx, slot))

	slots, err := env.slots.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, domain.ScopeAllDays, slots[0].Scope)
}

func TestSlotService_CreateRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)

	err := env.slots.Create(context.Background(), &domain.ClosedTimeSlot{StartHour: 10, EndHour: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start must be before end")
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)

	err := env.settings.Update(context.Background(), domain.SchedulerConfig{BufferMinutes: -5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer_minutes")
}

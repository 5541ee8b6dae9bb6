package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotplan/internal/contract"
	"slotplan/internal/domain"
	"slotplan/internal/repository"
	"slotplan/internal/testutil"
)

func TestPlanService_GenerateTwoDayCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWorkday(t, env)
	seedSettings(t, env, domain.SchedulerConfig{
		BufferMinutes:          0,
		MaxNewTaskStartsPerDay: 2,
		StartDate:              "2024-02-15",
	})

	task := testutil.NewTestTask("report", 6, 3,
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithDeadlineDay(3))
	require.NoError(t, env.tasks.Create(ctx, task))

	resp, err := env.plan.Generate(ctx, nil, true)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "2024-02-15", resp.StartDate)
	require.Len(t, resp.Schedule, 2)

	day1 := resp.Schedule[0]
	require.Len(t, day1.ScheduledTasks, 1)
	assert.Equal(t, "08:00", day1.ScheduledTasks[0].StartTime)
	assert.Equal(t, "11:00", day1.ScheduledTasks[0].EndTime)
	assert.Equal(t, "3.0/6.0", day1.ScheduledTasks[0].Progress)

	assert.Equal(t, "6.0/6.0", resp.Schedule[1].ScheduledTasks[0].Progress)
	assert.Empty(t, resp.Warnings)

	// The run is a projection: stored task progress is untouched.
	stored, err := env.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.HoursCompleted)
}

func TestPlanService_GeneratePersistsRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWorkday(t, env)
	seedSettings(t, env, domain.SchedulerConfig{MaxNewTaskStartsPerDay: 2, StartDate: "2024-02-15"})

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("report", 6, 3, testutil.WithDeadlineDay(3))))

	generated, err := env.plan.Generate(ctx, nil, true)
	require.NoError(t, err)

	last, err := env.plan.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, generated.RunID, last.RunID)
	assert.Equal(t, generated.StartDate, last.StartDate)
	assert.Equal(t, generated.Schedule, last.Schedule)
}

func TestPlanService_GenerateWithoutSave(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWorkday(t, env)
	seedSettings(t, env, domain.SchedulerConfig{MaxNewTaskStartsPerDay: 2, StartDate: "2024-02-15"})
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("report", 6, 3, testutil.WithDeadlineDay(3))))

	resp, err := env.plan.Generate(ctx, nil, false)
	require.NoError(t, err)
	assert.Empty(t, resp.RunID)

	_, err = env.plan.LastRun(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_GenerateIsDeterministic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWorkday(t, env)
	seedSettings(t, env, domain.SchedulerConfig{
		BufferMinutes:          15,
		MaxNewTaskStartsPerDay: 2,
		StartDate:              "2024-02-15",
	})

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("report", 10, 2, testutil.WithPriority(domain.PriorityHigh), testutil.WithDeadlineDay(10))))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("exam", 9, 3, testutil.WithPriority(domain.PriorityHigh), testutil.WithDeadlineDay(7))))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("reviews", 6, 1.5, testutil.WithDeadlineDay(12))))

	first, err := env.plan.Generate(ctx, nil, false)
	require.NoError(t, err)
	second, err := env.plan.Generate(ctx, nil, false)
	require.NoError(t, err)

	assert.Equal(t, first.Schedule, second.Schedule)
	assert.Equal(t, first.Warnings, second.Warnings)
	assert.Equal(t, first.Tasks, second.Tasks)
}

func TestPlanService_SettingsOverrides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWorkday(t, env)
	seedSettings(t, env, domain.SchedulerConfig{MaxNewTaskStartsPerDay: 2, StartDate: "2024-02-15"})
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("report", 3, 3, testutil.WithDeadlineDay(2))))

	start := "2024-03-01"
	resp, err := env.plan.Generate(ctx, &contract.SettingsPayload{StartDate: &start}, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", resp.StartDate)
}

func TestPlanService_Preview(t *testing.T) {
	env := newTestEnv(t)

	req := contract.ScheduleRequest{
		Tasks: []contract.TaskPayload{
			{Name: "report", TotalHours: 6, HoursPerSession: 3, Priority: 1, DeadlineDay: 3},
		},
		ClosedSlots: []contract.ClosedSlotPayload{
			{StartHour: 0, EndHour: 8, AppliesTo: "all_days"},
			{StartHour: 12, EndHour: 13, AppliesTo: "all_days"},
			{StartHour: 20, EndHour: 24, AppliesTo: "all_days"},
		},
		Settings: &contract.SettingsPayload{StartDate: strPtr("2024-02-15"), BufferMinutes: intPtr(0)},
	}

	resp, err := env.plan.Preview(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Schedule, 2)
	assert.Equal(t, "08:00", resp.Schedule[0].ScheduledTasks[0].StartTime)

	// Preview must not touch the store.
	tasks, err := env.tasks.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestPlanService_ValidateFlagsInfeasibleDeadline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWorkday(t, env)
	seedSettings(t, env, domain.SchedulerConfig{MaxNewTaskStartsPerDay: 2, StartDate: "2024-02-15"})
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("cram", 20, 2, testutil.WithDeadlineDay(3))))

	resp, err := env.plan.Validate(ctx, nil)
	require.NoError(t, err)
	assert.True(t, resp.Valid, "warnings alone do not invalidate the set")
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[0], "cram")
}

func TestPlanService_ValidateRejectsBadOverrides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWorkday(t, env)
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("report", 6, 3, testutil.WithDeadlineDay(3))))

	bad := "soon"
	resp, err := env.plan.Validate(ctx, &contract.SettingsPayload{StartDate: &bad})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0], "start_date")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

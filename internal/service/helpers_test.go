package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"slotplan/internal/domain"
	"slotplan/internal/repository"
	"slotplan/internal/testutil"
)

type testEnv struct {
	db       *sql.DB
	tasks    TaskService
	slots    SlotService
	settings SettingsService
	plan     PlanService
	imports  ImportService
}

var fixedNow = time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	taskRepo := repository.NewSQLiteTaskRepo(database)
	slotRepo := repository.NewSQLiteClosedSlotRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	runRepo := repository.NewSQLiteScheduleRunRepo(database)

	plan := NewPlanService(taskRepo, slotRepo, settingsRepo, runRepo, uow).(*planService)
	plan.now = func() time.Time { return fixedNow }

	return &testEnv{
		db:       database,
		tasks:    NewTaskService(taskRepo),
		slots:    NewSlotService(slotRepo),
		settings: NewSettingsService(settingsRepo),
		plan:     plan,
		imports:  NewImportService(uow),
	}
}

// seedWorkday stores the standard three closures leaving 08:00-12:00,
// 13:00-20:00 free every day.
func seedWorkday(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	for _, slot := range []*domain.ClosedTimeSlot{
		testutil.NewTestSlot(0, 8),
		testutil.NewTestSlot(12, 13),
		testutil.NewTestSlot(20, 24),
	} {
		require.NoError(t, env.slots.Create(ctx, slot))
	}
}

func seedSettings(t *testing.T, env *testEnv, cfg domain.SchedulerConfig) {
	t.Helper()
	require.NoError(t, env.settings.Update(context.Background(), cfg))
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotplan/internal/domain"
	"slotplan/internal/testutil"
)

func TestSettingsRepo_GetReturnsSeededDefaults(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestSettingsRepo_UpdateRoundTrip(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	cfg := domain.SchedulerConfig{
		BufferMinutes:          30,
		MaxNewTaskStartsPerDay: 1,
		StartDate:              "2024-03-01",
		HorizonDays:            21,
	}
	require.NoError(t, repo.Update(ctx, cfg))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSettingsRepo_UpdateIsIdempotent(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	cfg := domain.DefaultConfig()
	cfg.BufferMinutes = 45
	require.NoError(t, repo.Update(ctx, cfg))
	require.NoError(t, repo.Update(ctx, cfg))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, got.BufferMinutes)
}

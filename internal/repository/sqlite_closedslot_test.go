package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotplan/internal/domain"
	"slotplan/internal/testutil"
)

func TestClosedSlotRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteClosedSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	slot := testutil.NewTestSlot(8, 17, testutil.WithWeekdays(0, 1, 2, 3, 4))
	slot.StartMinute = 30
	require.NoError(t, repo.Create(ctx, slot))
	assert.NotZero(t, slot.ID)

	got, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.StartHour)
	assert.Equal(t, 30, got.StartMinute)
	assert.Equal(t, domain.ScopeWeekdays, got.Scope)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got.Weekdays)
	assert.Empty(t, got.SpecificDate)
}

func TestClosedSlotRepo_SpecificDateRoundTrip(t *testing.T) {
	repo := NewSQLiteClosedSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	slot := testutil.NewTestSlot(9, 12, testutil.WithSpecificDate("2024-02-15"))
	require.NoError(t, repo.Create(ctx, slot))

	got, err := repo.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeSpecificDate, got.Scope)
	assert.Equal(t, "2024-02-15", got.SpecificDate)
	assert.Nil(t, got.Weekdays)
}

func TestClosedSlotRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteClosedSlotRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClosedSlotRepo_List(t *testing.T) {
	repo := NewSQLiteClosedSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSlot(0, 8)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSlot(20, 24)))

	slots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 0, slots[0].StartHour)
	assert.Equal(t, 24, slots[1].EndHour)
}

func TestClosedSlotRepo_Delete(t *testing.T) {
	repo := NewSQLiteClosedSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	slot := testutil.NewTestSlot(0, 8)
	require.NoError(t, repo.Create(ctx, slot))
	require.NoError(t, repo.Delete(ctx, slot.ID))

	assert.ErrorIs(t, repo.Delete(ctx, slot.ID), ErrNotFound)
}

func TestClosedSlotRepo_DeleteAll(t *testing.T) {
	repo := NewSQLiteClosedSlotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSlot(0, 8)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSlot(12, 13)))
	require.NoError(t, repo.DeleteAll(ctx))

	slots, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestWeekdaySerialization(t *testing.T) {
	assert.Equal(t, "", weekdaysToString(nil))
	assert.Equal(t, "0,2,4", weekdaysToString([]int{0, 2, 4}))
	assert.Nil(t, parseWeekdays(""))
	assert.Equal(t, []int{0, 2, 4}, parseWeekdays("0,2,4"))
	assert.Equal(t, []int{5}, parseWeekdays("5,junk"), "malformed entries are skipped")
}

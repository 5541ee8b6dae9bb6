package scheduler

import (
	"time"

	"slotplan/internal/domain"
)

// AvailableBlock is the remaining free time of one derived block on one
// date. Blocks are recomputed fresh each day and shrink from the front as
// sessions are placed into them.
type AvailableBlock struct {
	// OriginalStart is the block start before any placements, kept for
	// diagnostics.
	OriginalStart int

	// Start is the earliest minute still free in the block.
	Start int

	// End is the block end, exclusive.
	End int
}

// RemainingMinutes returns how many minutes of the block are still free.
func (b *AvailableBlock) RemainingMinutes() int {
	rem := b.End - b.Start
	if rem < 0 {
		return 0
	}
	return rem
}

// CanFit reports whether the block still holds at least durationMin minutes.
func (b *AvailableBlock) CanFit(durationMin int) bool {
	return durationMin > 0 && b.RemainingMinutes() >= durationMin
}

// ResolveAvailability derives the ordered, non-overlapping free blocks for
// one date. Slots from all scopes that match the date are pooled before
// merging: scope is a selection filter, not a priority.
func ResolveAvailability(date time.Time, slots []domain.ClosedTimeSlot) []AvailableBlock {
	var closed []Interval
	for i := range slots {
		if slots[i].AppliesTo(date) {
			closed = append(closed, Interval{
				Start: slots[i].StartMinutes(),
				End:   slots[i].EndMinutes(),
			})
		}
	}

	free := ComplementIntervals(closed)
	blocks := make([]AvailableBlock, 0, len(free))
	for _, iv := range free {
		blocks = append(blocks, AvailableBlock{
			OriginalStart: iv.Start,
			Start:         iv.Start,
			End:           iv.End,
		})
	}
	return blocks
}

// LongestBlockMinutes returns the duration of the largest free block on the
// given date, or 0 when the day is fully closed.
func LongestBlockMinutes(date time.Time, slots []domain.ClosedTimeSlot) int {
	longest := 0
	for _, b := range ResolveAvailability(date, slots) {
		if b.RemainingMinutes() > longest {
			longest = b.RemainingMinutes()
		}
	}
	return longest
}

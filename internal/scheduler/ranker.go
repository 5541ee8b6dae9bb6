package scheduler

import (
	"sort"

	"slotplan/internal/domain"
)

// RankTasks orders candidate tasks for one day by the canonical rules:
//  1. In-progress tasks first (continue partial work before starting new).
//  2. Urgency score: lower = more deadline pressure, sorts first.
//  3. Priority: high before medium before low.
//  4. Original input order (stable sort) for determinism.
//
// The input slice is not modified; the returned slice holds the same
// pointers in ranked order.
func RankTasks(tasks []*domain.Task, currentDay int) []*domain.Task {
	ranked := make([]*domain.Task, len(tasks))
	copy(ranked, tasks)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.InProgress != b.InProgress {
			return a.InProgress
		}

		ua, ub := a.UrgencyScore(currentDay), b.UrgencyScore(currentDay)
		if ua != ub {
			return ua < ub
		}

		return a.Priority < b.Priority
	})

	return ranked
}

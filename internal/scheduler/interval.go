package scheduler

import "sort"

// minutesPerDay is the span of one schedulable day: [00:00, 24:00).
const minutesPerDay = 24 * 60

// Interval is a half-open [Start, End) minute range within one day.
type Interval struct {
	Start int
	End   int
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// MergeIntervals sorts intervals by start and merges overlapping or
// adjacent ones into maximal runs. Empty intervals (Start >= End) must be
// rejected upstream; they are not handled here.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// ComplementIntervals returns the gaps left in [0, minutesPerDay) by the
// given closed intervals: before the first merged run, between runs, and
// after the last, clipped to the day. A fully closed day yields an empty
// result, which is a valid outcome rather than an error.
func ComplementIntervals(closed []Interval) []Interval {
	merged := MergeIntervals(closed)

	var free []Interval
	cursor := 0
	for _, iv := range merged {
		start := iv.Start
		if start > minutesPerDay {
			start = minutesPerDay
		}
		if start > cursor {
			free = append(free, Interval{Start: cursor, End: start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if cursor < minutesPerDay {
		free = append(free, Interval{Start: cursor, End: minutesPerDay})
	}
	return free
}

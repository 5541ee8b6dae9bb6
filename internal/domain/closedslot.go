package domain

import (
	"fmt"
	"time"
)

// ClosedTimeSlot declares an unavailable interval [start, end) within a
// single day, together with the dates it applies to. Slots never cross
// midnight. Immutable once a run begins.
type ClosedTimeSlot struct {
	ID          int
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	Scope       SlotScope

	// Weekdays holds 0=Monday .. 6=Sunday indices; only read when
	// Scope == ScopeWeekdays.
	Weekdays []int

	// SpecificDate is the YYYY-MM-DD date; only read when
	// Scope == ScopeSpecificDate.
	SpecificDate string

	CreatedAt time.Time
}

// StartMinutes returns minutes from midnight for the slot start.
func (s *ClosedTimeSlot) StartMinutes() int {
	return s.StartHour*60 + s.StartMinute
}

// EndMinutes returns minutes from midnight for the slot end.
// A 24:00 end maps to 1440.
func (s *ClosedTimeSlot) EndMinutes() int {
	return s.EndHour*60 + s.EndMinute
}

// AppliesTo reports whether the slot closes time on the given date.
func (s *ClosedTimeSlot) AppliesTo(date time.Time) bool {
	switch s.Scope {
	case ScopeAllDays:
		return true
	case ScopeWeekdays:
		wd := MondayWeekday(date)
		for _, d := range s.Weekdays {
			if d == wd {
				return true
			}
		}
		return false
	case ScopeSpecificDate:
		return s.SpecificDate == date.Format("2006-01-02")
	default:
		return false
	}
}

// MondayWeekday converts Go's Sunday-based weekday to the 0=Monday..6=Sunday
// convention used by closed-slot weekday sets.
func MondayWeekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// Validate checks interval and per-scope rules. Each scope variant carries
// its own constraints, so they are checked separately rather than through a
// generic date matcher.
func (s *ClosedTimeSlot) Validate() []error {
	var errs []error

	if s.StartHour < 0 || s.StartHour > 23 || s.StartMinute < 0 || s.StartMinute > 59 {
		errs = append(errs, fmt.Errorf("closed slot: invalid start time %02d:%02d", s.StartHour, s.StartMinute))
	}
	if s.EndHour < 0 || s.EndHour > 24 || s.EndMinute < 0 || s.EndMinute > 59 || (s.EndHour == 24 && s.EndMinute != 0) {
		errs = append(errs, fmt.Errorf("closed slot: invalid end time %02d:%02d", s.EndHour, s.EndMinute))
	}
	if s.StartMinutes() >= s.EndMinutes() {
		errs = append(errs, fmt.Errorf("closed slot %02d:%02d-%02d:%02d: start must be before end",
			s.StartHour, s.StartMinute, s.EndHour, s.EndMinute))
	}

	switch s.Scope {
	case ScopeAllDays:
		// no extra fields
	case ScopeWeekdays:
		if len(s.Weekdays) == 0 {
			errs = append(errs, fmt.Errorf("closed slot: weekdays scope requires at least one weekday"))
		}
		for _, d := range s.Weekdays {
			if d < 0 || d > 6 {
				errs = append(errs, fmt.Errorf("closed slot: weekday index %d out of range 0-6", d))
			}
		}
	case ScopeSpecificDate:
		if s.SpecificDate == "" {
			errs = append(errs, fmt.Errorf("closed slot: specific_date scope requires a date"))
		} else if _, err := time.Parse("2006-01-02", s.SpecificDate); err != nil {
			errs = append(errs, fmt.Errorf("closed slot: invalid specific_date %q (expected YYYY-MM-DD)", s.SpecificDate))
		}
	default:
		errs = append(errs, fmt.Errorf("closed slot: invalid scope %q", string(s.Scope)))
	}

	return errs
}

package domain

import "fmt"

// Priority is an ordinal task priority: lower value = higher priority.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// SlotScope selects which calendar dates a closed slot applies to.
type SlotScope string

const (
	ScopeAllDays      SlotScope = "all_days"
	ScopeWeekdays     SlotScope = "weekdays"
	ScopeSpecificDate SlotScope = "specific_date"
)

// ValidSlotScopes is the canonical set of accepted scope strings.
var ValidSlotScopes = map[string]bool{
	"all_days": true, "weekdays": true, "specific_date": true,
}

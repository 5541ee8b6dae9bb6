package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"slotplan/internal/contract"
)

// ImportSchema is the top-level JSON structure for a scenario import:
// the full planning state in one file.
type ImportSchema struct {
	Tasks       []contract.TaskPayload       `json:"tasks"`
	ClosedSlots []contract.ClosedSlotPayload `json:"closed_slots"`
	Settings    *contract.SettingsPayload    `json:"settings,omitempty"`
}

// LoadImportSchema reads and parses a scenario import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Change actions recorded in the history.
const (
	ActionCreateInstance = "create_instance"
	ActionDeleteInstance = "delete_instance"
	ActionSwitchInstance = "switch_instance"
	ActionModifyVariable = "modify_variable"
	ActionCopyInstance   = "copy_instance"
	ActionResetInstance  = "reset_instance"
)

// ChangeRecord is one entry of the append-only modification history.
type ChangeRecord struct {
	ID            string         `json:"id"`
	Timestamp     time.Time      `json:"timestamp"`
	Action        string         `json:"action"`
	ContainerPath string         `json:"containerPath"`
	Details       map[string]any `json:"details"`
}

func (m *Model) recordChange(action, containerPath string, details map[string]any) {
	m.history = append(m.history, ChangeRecord{
		ID:            uuid.NewString(),
		Timestamp:     time.Now(),
		Action:        action,
		ContainerPath: containerPath,
		Details:       details,
	})
}

// History returns a copy of the modification history, oldest first.
func (m *Model) History() []ChangeRecord {
	out := make([]ChangeRecord, len(m.history))
	copy(out, m.history)
	return out
}

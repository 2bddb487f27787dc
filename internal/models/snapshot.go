package models

import "time"

// SnapshotVersion identifies the export document layout.
const SnapshotVersion = 1

// Snapshot is the serializable backup document covering all three
// collections. Import replaces each collection wholesale; fields the
// importer does not recognize are skipped rather than rejected.
type Snapshot struct {
	Version        int             `json:"version"`
	ExportedAt     time.Time       `json:"exported_at"`
	Transactions   []Transaction   `json:"transactions"`
	Budgets        []Budget        `json:"budgets"`
	RecurringRules []RecurringRule `json:"recurring_rules"`
}

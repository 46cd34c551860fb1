// Package model defines the merge journal data types.
package model

import "time"

// Merge modes.
const (
	ModeThreeWay = "three-way"
	ModeTwoWay   = "two-way"
)

// MergeRecord is one run of the merge driver.
type MergeRecord struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Chapter     int                `json:"chapter"`
	Slot        int                `json:"slot"`
	Mode        string             `json:"mode"`
	Lines       int                `json:"lines"`
	Conflicts   int                `json:"conflicts"`
	CreatedAt   time.Time          `json:"created_at"`
	Diagnostics []DiagnosticRecord `json:"diagnostics,omitempty"`
}

// Clean reports whether the run wrote no conflicts.
func (r MergeRecord) Clean() bool { return r.Conflicts == 0 }

// DiagnosticRecord is a diagnostic emitted during a merge run.
type DiagnosticRecord struct {
	ID      string `json:"id,omitempty"`
	MergeID string `json:"merge_id,omitempty"`
	Seq     int    `json:"seq"`
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidModes are the allowed merge modes.
var ValidModes = map[string]bool{
	ModeThreeWay: true,
	ModeTwoWay:   true,
}

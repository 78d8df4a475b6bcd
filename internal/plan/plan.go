// Package plan parses human-curated refactor plans into typed task
// records and renders them back.
//
// The plan format is semi-structured markdown: task blocks open with a
// "#### TASK-<n>: <title>" heading and carry labeled fields like
// "**Priority**: high". Extraction is deliberately regex-based labeled
// field matching, not a markdown AST; first match wins per field and a
// missing field degrades to its default, never failing the block.
package plan

// Field defaults. Every Task field has one, so a malformed or partial
// block still yields a usable record.
const (
	DefaultPriority     = "medium"
	DefaultRisk         = "medium"
	DefaultEffort       = "TBD"
	DefaultDependencies = "None"
)

// Task is one work item extracted from a refactor plan.
//
// IDs are not deduplicated: a document with two TASK-004 blocks yields
// two records, processed independently. Flagged for product review, but
// preserved as observed behavior.
type Task struct {
	// ID is the task identifier in the form "TASK-<digits>".
	ID string

	// Title is the first non-blank line of the task block.
	Title string

	// Priority is one of urgent, high, medium, low. Unrecognized values
	// are carried verbatim; label mapping handles them downstream.
	Priority string

	// Risk is one of high, medium, low.
	Risk string

	// Effort is free text (for example "2 days").
	Effort string

	// What, Why and Criteria are verbatim list-item blocks.
	What     string
	Why      string
	Criteria string

	// Dependencies is free text naming prerequisite tasks.
	Dependencies string
}

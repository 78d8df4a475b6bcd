package plan

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern opens a task block. The trailing \s+ is greedy across
// newlines, so a heading with nothing after the colon starts its block
// at the next non-blank line.
var headingPattern = regexp.MustCompile(`####\s+TASK-(\d+):\s+`)

// Labeled scalar fields: first match wins, value runs to end of line.
var (
	priorityPattern = regexp.MustCompile(`\*\*Priority\*\*:\s+(\w+)`)
	riskPattern     = regexp.MustCompile(`\*\*Risk\*\*:\s+(\w+)`)
	effortPattern   = regexp.MustCompile(`\*\*Effort\*\*:\s+(.+)`)
	depsPattern     = regexp.MustCompile(`\*\*Dependencies\*\*:\s+(.+)`)
)

// Labeled block fields: the contiguous run of list-item lines after the
// label. Criteria requires checkbox items.
var (
	whatPattern     = regexp.MustCompile(`\*\*What\*\*:\s*\n((?:- .+\n?)+)`)
	whyPattern      = regexp.MustCompile(`\*\*Why\*\*:\s*\n((?:- .+\n?)+)`)
	criteriaPattern = regexp.MustCompile(`\*\*Acceptance Criteria\*\*:\s*\n((?:- \[.\] .+\n?)+)`)
)

// Parse extracts the ordered task list from a refactor plan document.
//
// Blocks run from one TASK heading to the next (or end of document),
// greedy and non-overlapping, in document order. Duplicate IDs are kept.
func Parse(content string) []Task {
	matches := headingPattern.FindAllStringSubmatchIndex(content, -1)

	tasks := make([]Task, 0, len(matches))
	for i, m := range matches {
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		id := fmt.Sprintf("TASK-%s", content[m[2]:m[3]])
		tasks = append(tasks, parseBlock(id, content[m[1]:end]))
	}
	return tasks
}

// parseBlock extracts one task record from its block text. Every field
// degrades to its default: a malformed block never fails the parse.
func parseBlock(id, block string) Task {
	task := Task{
		ID:           id,
		Priority:     DefaultPriority,
		Risk:         DefaultRisk,
		Effort:       DefaultEffort,
		Dependencies: DefaultDependencies,
	}

	// Title is the first non-blank line of the block, which for the
	// usual "#### TASK-001: Do the thing" layout is the heading's own
	// remainder.
	if lines := strings.Split(strings.TrimSpace(block), "\n"); len(lines) > 0 {
		task.Title = strings.TrimSpace(lines[0])
	}

	if m := priorityPattern.FindStringSubmatch(block); m != nil {
		task.Priority = strings.ToLower(m[1])
	}
	if m := riskPattern.FindStringSubmatch(block); m != nil {
		task.Risk = strings.ToLower(m[1])
	}
	if m := effortPattern.FindStringSubmatch(block); m != nil {
		task.Effort = strings.TrimSpace(m[1])
	}
	if m := depsPattern.FindStringSubmatch(block); m != nil {
		task.Dependencies = strings.TrimSpace(m[1])
	}
	if m := whatPattern.FindStringSubmatch(block); m != nil {
		task.What = strings.TrimSpace(m[1])
	}
	if m := whyPattern.FindStringSubmatch(block); m != nil {
		task.Why = strings.TrimSpace(m[1])
	}
	if m := criteriaPattern.FindStringSubmatch(block); m != nil {
		task.Criteria = strings.TrimSpace(m[1])
	}

	return task
}

// FormatTask renders a task back into the labeled-field block format.
// A task in canonical shape (list-item What/Why, checkbox Criteria)
// round-trips through Parse unchanged.
func FormatTask(t Task) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "#### %s: %s\n\n", t.ID, t.Title)
	fmt.Fprintf(&sb, "**Priority**: %s\n", t.Priority)
	fmt.Fprintf(&sb, "**Risk**: %s\n", t.Risk)
	fmt.Fprintf(&sb, "**Effort**: %s\n", t.Effort)
	fmt.Fprintf(&sb, "**Dependencies**: %s\n", t.Dependencies)

	if t.What != "" {
		fmt.Fprintf(&sb, "\n**What**:\n%s\n", t.What)
	}
	if t.Why != "" {
		fmt.Fprintf(&sb, "\n**Why**:\n%s\n", t.Why)
	}
	if t.Criteria != "" {
		fmt.Fprintf(&sb, "\n**Acceptance Criteria**:\n%s\n", t.Criteria)
	}

	return sb.String()
}

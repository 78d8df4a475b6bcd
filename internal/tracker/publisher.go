package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codelift/codelift/internal/plan"
)

// BacklogColumn is where freshly published tasks land on the board.
const BacklogColumn = "Backlog"

// Publisher turns parsed tasks into tracker issues, one at a time, in
// document order.
type Publisher struct {
	client Client
	column string
}

// NewPublisher builds a publisher targeting the backlog column.
func NewPublisher(client Client) *Publisher {
	return &Publisher{client: client, column: BacklogColumn}
}

// Created pairs a task with the issue it produced.
type Created struct {
	TaskID string
	Number int
	URL    string
}

// BatchResult aggregates a publish run: every success and every task
// whose creation failed with a tracker error.
type BatchResult struct {
	Created []Created
	Failed  []string
}

// PublishAll publishes tasks strictly sequentially. A tracker-kind error
// on one task is recorded and the batch moves on; it is neither retried
// nor does it cancel the remaining work. Any other error aborts the
// batch, returning the progress made so far alongside the error.
func (p *Publisher) PublishAll(ctx context.Context, tasks []plan.Task) (*BatchResult, error) {
	result := &BatchResult{}

	for _, task := range tasks {
		issue, err := p.client.CreateIssue(ctx, BuildSpec(task, p.column))
		if err != nil {
			var trackerErr *Error
			if errors.As(err, &trackerErr) {
				result.Failed = append(result.Failed, task.ID)
				continue
			}
			return result, err
		}
		result.Created = append(result.Created, Created{
			TaskID: task.ID,
			Number: issue.Number,
			URL:    issue.URL,
		})
	}

	return result, nil
}

// BuildSpec derives the issue-creation request for a task. The mapping
// is deterministic: same task, same spec.
func BuildSpec(t plan.Task, column string) IssueSpec {
	labels := []string{"modernization", PriorityLabel(t.Priority)}
	if strings.ToLower(t.Risk) == "high" {
		labels = append(labels, "high-risk")
	}

	return IssueSpec{
		Title:  fmt.Sprintf("[Modernization] %s: %s", t.ID, t.Title),
		Body:   buildIssueBody(t),
		Labels: labels,
		Column: column,
	}
}

// PriorityLabel maps a task priority onto a tracker label. The mapping
// is total: unrecognized or blank priorities map to priority:medium.
func PriorityLabel(priority string) string {
	switch strings.ToLower(priority) {
	case "urgent", "high":
		return "priority:high"
	case "low":
		return "priority:low"
	default:
		return "priority:medium"
	}
}

// buildIssueBody renders the fixed body template, embedding the block
// fields verbatim.
func buildIssueBody(t plan.Task) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**Task ID:** %s\n", t.ID)
	fmt.Fprintf(&sb, "**Priority:** %s\n", strings.ToUpper(t.Priority))
	fmt.Fprintf(&sb, "**Risk:** %s\n", strings.ToUpper(t.Risk))
	fmt.Fprintf(&sb, "**Effort:** %s\n\n", t.Effort)

	fmt.Fprintf(&sb, "## What\n\n%s\n\n", t.What)
	fmt.Fprintf(&sb, "## Why\n\n%s\n\n", t.Why)
	fmt.Fprintf(&sb, "## Acceptance Criteria\n\n%s\n\n", t.Criteria)
	fmt.Fprintf(&sb, "## Dependencies\n\n%s\n\n", t.Dependencies)

	sb.WriteString("---\n\n")
	sb.WriteString("**Part of legacy code modernization workflow.**\n\n")
	sb.WriteString("See: `docs/modernization/refactor-plan.md`\n")

	return sb.String()
}

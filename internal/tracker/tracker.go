// Package tracker is the issue-tracking service boundary: it owns
// authentication, transport, and board placement. The rest of the module
// only sees the Client contract and the Error kind.
package tracker

import (
	"context"
	"fmt"
)

// IssueSpec is a deterministic issue-creation request derived from a
// task record. It is handed to the client and never persisted.
type IssueSpec struct {
	Title  string
	Body   string
	Labels []string

	// Column optionally names the board column the issue should land in.
	Column string
}

// Issue identifies a created tracker issue.
type Issue struct {
	Number int
	URL    string
}

// Client is the collaborator contract consumed by the publisher.
type Client interface {
	// CreateIssue creates one issue, performing any board-placement
	// side effect internally, and returns its number and URL.
	CreateIssue(ctx context.Context, spec IssueSpec) (*Issue, error)
}

// Error is the distinct tracker-error kind. The issue-creation batch
// catches it per item; anything else aborts the run.
type Error struct {
	// Status is the HTTP status code, when the failure came from an
	// HTTP response. Zero otherwise.
	Status int

	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("tracker: %s (status %d)", e.Message, e.Status)
	}
	return "tracker: " + e.Message
}

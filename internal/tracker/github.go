package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/codelift/codelift/internal/config"
)

const (
	defaultAPIBase    = "https://api.github.com"
	defaultGraphQLURL = "https://api.github.com/graphql"
)

// GitHubClient implements Client against the GitHub REST and GraphQL
// APIs. Requests are rate-limited client-side; retries and pagination
// are intentionally not implemented here.
type GitHubClient struct {
	cfg        config.GitHub
	httpClient *http.Client
	limiter    *rate.Limiter

	// Overridable for tests.
	apiBase    string
	graphqlURL string
}

// NewGitHubClient builds a client for the configured owner/repo.
func NewGitHubClient(cfg config.GitHub) *GitHubClient {
	return &GitHubClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		// GitHub's secondary limits bite near 1 req/s for writes.
		limiter:    rate.NewLimiter(rate.Every(time.Second), 3),
		apiBase:    defaultAPIBase,
		graphqlURL: defaultGraphQLURL,
	}
}

// Do performs an authenticated REST request. path is relative to the API
// base (for example "/repos/owner/repo/issues"). A non-nil out receives
// the decoded JSON response. Failures surface as *Error.
func (c *GitHubClient) Do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: apiErrorMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("decoding response: %v", err)}
		}
	}
	return nil
}

// apiErrorMessage pulls GitHub's error message out of a failure body.
func apiErrorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return string(data)
}

// GraphQL performs an authenticated GraphQL request and decodes the
// "data" object into out. GraphQL-level errors surface as *Error.
func (c *GitHubClient) GraphQL(ctx context.Context, query string, vars map[string]any, out any) error {
	var resp struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	payload := map[string]any{"query": query, "variables": vars}
	if err := c.doGraphQL(ctx, payload, &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return &Error{Message: resp.Errors[0].Message}
	}
	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return &Error{Message: fmt.Sprintf("decoding graphql data: %v", err)}
		}
	}
	return nil
}

func (c *GitHubClient) doGraphQL(ctx context.Context, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding graphql payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building graphql request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: apiErrorMessage(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("decoding graphql response: %v", err)}
	}
	return nil
}

// CreateIssue implements Client: creates the issue via REST, then places
// it on the configured Projects V2 board when a column is requested.
func (c *GitHubClient) CreateIssue(ctx context.Context, spec IssueSpec) (*Issue, error) {
	var created struct {
		Number  int    `json:"number"`
		HTMLURL string `json:"html_url"`
		NodeID  string `json:"node_id"`
	}

	path := fmt.Sprintf("/repos/%s/%s/issues", c.cfg.Owner, c.cfg.Repo)
	body := map[string]any{
		"title":  spec.Title,
		"body":   spec.Body,
		"labels": spec.Labels,
	}
	if err := c.Do(ctx, http.MethodPost, path, body, &created); err != nil {
		return nil, err
	}

	if c.cfg.ProjectNumber > 0 && spec.Column != "" {
		if err := c.addToProject(ctx, created.NodeID, spec.Column); err != nil {
			return nil, err
		}
	}

	return &Issue{Number: created.Number, URL: created.HTMLURL}, nil
}

const projectFieldsQuery = `
query($login: String!, $number: Int!) {
  user(login: $login) {
    projectV2(number: $number) {
      id
      field(name: "Status") {
        ... on ProjectV2SingleSelectField {
          id
          options { id name }
        }
      }
    }
  }
}`

const addItemMutation = `
mutation($projectId: ID!, $contentId: ID!) {
  addProjectV2ItemById(input: {projectId: $projectId, contentId: $contentId}) {
    item { id }
  }
}`

const setStatusMutation = `
mutation($projectId: ID!, $itemId: ID!, $fieldId: ID!, $optionId: String!) {
  updateProjectV2ItemFieldValue(input: {
    projectId: $projectId
    itemId: $itemId
    fieldId: $fieldId
    value: {singleSelectOptionId: $optionId}
  }) {
    projectV2Item { id }
  }
}`

// addToProject adds an issue to the configured board and moves it to the
// named Status column.
func (c *GitHubClient) addToProject(ctx context.Context, issueNodeID, column string) error {
	var project struct {
		User struct {
			ProjectV2 struct {
				ID    string `json:"id"`
				Field struct {
					ID      string `json:"id"`
					Options []struct {
						ID   string `json:"id"`
						Name string `json:"name"`
					} `json:"options"`
				} `json:"field"`
			} `json:"projectV2"`
		} `json:"user"`
	}
	err := c.GraphQL(ctx, projectFieldsQuery, map[string]any{
		"login":  c.cfg.Owner,
		"number": c.cfg.ProjectNumber,
	}, &project)
	if err != nil {
		return err
	}

	projectID := project.User.ProjectV2.ID
	if projectID == "" {
		return &Error{Message: fmt.Sprintf("project %d not found for %s", c.cfg.ProjectNumber, c.cfg.Owner)}
	}

	var added struct {
		AddProjectV2ItemById struct {
			Item struct {
				ID string `json:"id"`
			} `json:"item"`
		} `json:"addProjectV2ItemById"`
	}
	err = c.GraphQL(ctx, addItemMutation, map[string]any{
		"projectId": projectID,
		"contentId": issueNodeID,
	}, &added)
	if err != nil {
		return err
	}

	field := project.User.ProjectV2.Field
	optionID := ""
	for _, opt := range field.Options {
		if opt.Name == column {
			optionID = opt.ID
			break
		}
	}
	if optionID == "" {
		return &Error{Message: fmt.Sprintf("board column %q not found", column)}
	}

	return c.GraphQL(ctx, setStatusMutation, map[string]any{
		"projectId": projectID,
		"itemId":    added.AddProjectV2ItemById.Item.ID,
		"fieldId":   field.ID,
		"optionId":  optionID,
	}, nil)
}

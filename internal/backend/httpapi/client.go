// Package httpapi is the remote backend: a thin client for the hiring
// pipeline REST API. It maps transport failures onto the application's
// sentinel errors so callers never see HTTP details.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

// Client implements backend.Backend against the hiring pipeline API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the API at baseURL. token may be empty for
// endpoints that do not require a session.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do runs one request and decodes the JSON response into out (when out is
// non-nil). Network-level failures come back as ErrUnreachable; HTTP
// error statuses map onto the matching sentinel.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, app.ErrUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %w", method, path, statusError(resp.StatusCode))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

func statusError(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return app.ErrNotLoggedIn
	case http.StatusForbidden:
		return app.ErrForbidden
	case http.StatusNotFound:
		return app.ErrNotFound
	case http.StatusConflict:
		return app.ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return app.ErrUnreachable
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login",
		bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", app.ErrUnreachable)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("login: %w", statusError(resp.StatusCode))
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	c.token = out.AccessToken
	return out.AccessToken, nil
}

func (c *Client) GetCurrentUser(ctx context.Context) (models.User, error) {
	if c.token == "" {
		return models.User{}, app.ErrNotLoggedIn
	}
	var u models.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u)
	return u, err
}

func (c *Client) GetJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := c.do(ctx, http.MethodGet, "/jobs/", nil, &jobs)
	return jobs, err
}

func (c *Client) GetJob(ctx context.Context, id int) (models.Job, error) {
	var job models.Job
	err := c.do(ctx, http.MethodGet, "/jobs/"+strconv.Itoa(id), nil, &job)
	return job, err
}

func (c *Client) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	var created models.Job
	err := c.do(ctx, http.MethodPost, "/jobs/", job, &created)
	return created, err
}

func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/jobs/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) GetCandidates(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := c.do(ctx, http.MethodGet, "/candidates/", nil, &candidates)
	return candidates, err
}

func (c *Client) GetCandidate(ctx context.Context, id int) (models.Candidate, error) {
	var candidate models.Candidate
	err := c.do(ctx, http.MethodGet, "/candidates/"+strconv.Itoa(id), nil, &candidate)
	return candidate, err
}

func (c *Client) CreateCandidate(ctx context.Context, candidate models.Candidate) (models.Candidate, error) {
	var created models.Candidate
	err := c.do(ctx, http.MethodPost, "/candidates/", candidate, &created)
	return created, err
}

func (c *Client) SetCandidateStatus(ctx context.Context, candidateID int, status string) (models.Candidate, error) {
	path := fmt.Sprintf("/candidates/%d/status?status=%s", candidateID, url.QueryEscape(status))
	var updated models.Candidate
	err := c.do(ctx, http.MethodPut, path, nil, &updated)
	return updated, err
}

func (c *Client) DeleteCandidate(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/candidates/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) GetInterviews(ctx context.Context) ([]models.InterviewWithFeedback, error) {
	var interviews []models.InterviewWithFeedback
	err := c.do(ctx, http.MethodGet, "/interviews/", nil, &interviews)
	return interviews, err
}

func (c *Client) GetInterview(ctx context.Context, id int) (models.InterviewWithFeedback, error) {
	var iv models.InterviewWithFeedback
	err := c.do(ctx, http.MethodGet, "/interviews/"+strconv.Itoa(id), nil, &iv)
	return iv, err
}

func (c *Client) CreateInterview(ctx context.Context, iv models.Interview) (models.Interview, error) {
	var created models.Interview
	err := c.do(ctx, http.MethodPost, "/interviews/", iv, &created)
	return created, err
}

func (c *Client) SubmitFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	var created models.Feedback
	err := c.do(ctx, http.MethodPost, "/feedback/", fb, &created)
	return created, err
}

func (c *Client) GetKanbanView(ctx context.Context) (map[string][]models.Candidate, error) {
	var view map[string][]models.Candidate
	err := c.do(ctx, http.MethodGet, "/kanban", nil, &view)
	return view, err
}

func (c *Client) MoveKanban(ctx context.Context, candidateID int, newStatus string) error {
	path := fmt.Sprintf("/kanban/move?candidate_id=%d&new_status=%s", candidateID, url.QueryEscape(newStatus))
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/auth/users", nil, &users)
	return users, err
}

func (c *Client) ApproveUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/auth/users/%d/approve", id), nil, nil)
}

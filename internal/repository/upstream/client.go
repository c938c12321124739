package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-jobportal-forms/internal/domain"
)

// Upstream endpoints
const (
	PathRecruiter   = "/recruiter"
	PathUser        = "/user"
	PathApplication = "/application"
)

// maxErrorBody caps how much of an error response is kept for logs
const maxErrorBody = 512

type gateway struct {
	client  *http.Client
	baseURL string
}

// NewGateway creates a SubmissionGateway that posts JSON to the portal API at baseURL
func NewGateway(baseURL string, timeout time.Duration) domain.SubmissionGateway {
	return &gateway{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// SubmitRecruiter succeeds only on 201 Created
func (g *gateway) SubmitRecruiter(ctx context.Context, r *domain.RecruiterCandidate) error {
	return g.post(ctx, PathRecruiter, r, exactly(http.StatusCreated))
}

// SubmitUser succeeds only on 201 Created
func (g *gateway) SubmitUser(ctx context.Context, u *domain.UserCandidate) error {
	return g.post(ctx, PathUser, u, exactly(http.StatusCreated))
}

// SubmitApplication succeeds on any 2xx
func (g *gateway) SubmitApplication(ctx context.Context, p *domain.ApplicationPayload) error {
	return g.post(ctx, PathApplication, p, anySuccess)
}

func exactly(code int) func(int) bool {
	return func(status int) bool { return status == code }
}

func anySuccess(status int) bool {
	return status >= 200 && status < 300
}

// StatusError is returned when the portal API answers with an unexpected status
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.Path, e.Status)
}

func (g *gateway) post(ctx context.Context, path string, body interface{}, ok func(int) bool) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id, _ := ctx.Value(domain.KeyRequestID).(string); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if !ok(resp.StatusCode) {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Path: path, Status: resp.StatusCode, Body: string(snippet)}
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

package domain

import (
	"context"
	"errors"
	"time"
)

// SubmissionResult tells the client what happened and where to go next
type SubmissionResult struct {
	Message  string `json:"message"`
	NextView string `json:"next_view"`
}

// SubmissionGateway sends validated forms to the remote portal API
type SubmissionGateway interface {
	SubmitRecruiter(ctx context.Context, r *RecruiterCandidate) error
	SubmitUser(ctx context.Context, u *UserCandidate) error
	SubmitApplication(ctx context.Context, p *ApplicationPayload) error
}

// ErrSubmissionInFlight is returned when a form instance already has a
// submission in progress
var ErrSubmissionInFlight = errors.New("submission already in progress")

// InflightGuard allows at most one in-flight submission per key
type InflightGuard interface {
	// Acquire claims key for ttl and returns the token that owns the claim.
	// It returns ErrSubmissionInFlight when the key is already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Release frees key only while token still owns it, so a claim that
	// expired and was taken over is left alone.
	Release(ctx context.Context, key, token string) error
}

package usecase

import (
	"context"
	"fmt"

	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/internal/rules"
	"go-jobportal-forms/pkg/apperror"
	"go-jobportal-forms/pkg/logger"
	"go-jobportal-forms/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const msgApplicationFailed = "Failed to submit application."

// ApplicationFields is the error detail for a blocked application
type ApplicationFields struct {
	Fields map[string]string `json:"fields"`
}

type applicationUsecase struct {
	gateway  domain.SubmissionGateway
	rules    validation.Runner[*domain.JobApplication]
	validate *validator.Validate
}

// NewApplicationUsecase creates the job application workflow. validate checks
// the reshaped payload and must have the custom validators registered.
func NewApplicationUsecase(gateway domain.SubmissionGateway, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		gateway:  gateway,
		rules:    rules.NewApplicationValidator(),
		validate: validate,
	}
}

func (uc *applicationUsecase) Validate(ctx context.Context, app *domain.JobApplication) validation.Verdict {
	return uc.rules.Validate(app)
}

// Apply validates every field, then sends the reshaped payload upstream
func (uc *applicationUsecase) Apply(ctx context.Context, app *domain.JobApplication) (*domain.SubmissionResult, error) {
	if verdict := uc.rules.Validate(app); !verdict.Valid() {
		return nil, apperror.ValidationFailure("Validation failed", ApplicationFields{Fields: verdict.Fields()})
	}

	payload := domain.NewApplicationPayload(app)
	if err := uc.validate.Struct(payload); err != nil {
		logger.Log.Error("Application payload rejected", "errors", validation.FormatValidationErrors(err), "job_id", app.JobID)
		return nil, apperror.Internal(fmt.Errorf("application payload: %w", err))
	}

	if err := uc.gateway.SubmitApplication(ctx, payload); err != nil {
		logger.Log.Error("Application submission failed", "error", err, "job_id", app.JobID, "request_id", requestID(ctx))
		return nil, apperror.SubmissionFailure(msgApplicationFailed, fmt.Errorf("submit application: %w", err))
	}

	logger.Log.Info("Application submitted", "job_id", app.JobID, "user_id", userID(ctx))
	return &domain.SubmissionResult{
		Message:  "Application submitted successfully!",
		NextView: domain.ViewUserHome,
	}, nil
}

func userID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyUserID).(string)
	return id
}

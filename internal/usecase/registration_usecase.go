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

const msgRegistrationFailed = "Registration failed. Please try again."

// RegistrationMessages is the error detail for a blocked registration
type RegistrationMessages struct {
	Messages []string `json:"messages"`
}

type registrationUsecase struct {
	gateway   domain.SubmissionGateway
	validate  *validator.Validate
	recruiter validation.Runner[*domain.RecruiterCandidate]
	user      validation.Runner[*domain.UserCandidate]
}

// NewRegistrationUsecase creates the recruiter and user registration workflows.
// validate must have the custom tags from validation.RegisterValidators.
func NewRegistrationUsecase(gateway domain.SubmissionGateway, validate *validator.Validate) domain.RegistrationUsecase {
	return &registrationUsecase{
		gateway:   gateway,
		validate:  validate,
		recruiter: rules.NewRecruiterValidator(),
		user:      rules.NewUserValidator(),
	}
}

func (uc *registrationUsecase) ValidateRecruiter(ctx context.Context, r *domain.RecruiterCandidate) validation.Verdict {
	return uc.recruiter.Validate(r)
}

func (uc *registrationUsecase) InspectRecruiter(ctx context.Context, r *domain.RecruiterCandidate) validation.Verdict {
	return uc.recruiter.Exhaustive().Validate(r)
}

// RegisterRecruiter submits the form upstream only when every rule passes
func (uc *registrationUsecase) RegisterRecruiter(ctx context.Context, r *domain.RecruiterCandidate) (*domain.SubmissionResult, error) {
	if verdict := uc.recruiter.Validate(r); !verdict.Valid() {
		return nil, registrationInvalid(verdict)
	}

	if err := uc.validate.Struct(r); err != nil {
		logger.Log.Error("Recruiter payload rejected", "errors", validation.FormatValidationErrors(err), "request_id", requestID(ctx))
		return nil, apperror.Internal(fmt.Errorf("recruiter payload: %w", err))
	}

	if err := uc.gateway.SubmitRecruiter(ctx, r); err != nil {
		logger.Log.Error("Recruiter registration failed", "error", err, "request_id", requestID(ctx))
		return nil, apperror.SubmissionFailure(msgRegistrationFailed, fmt.Errorf("submit recruiter: %w", err))
	}

	logger.Log.Info("Recruiter registered", "request_id", requestID(ctx))
	return &domain.SubmissionResult{
		Message:  "Recruiter registered successfully!",
		NextView: domain.ViewRecruiterLogin,
	}, nil
}

func (uc *registrationUsecase) ValidateUser(ctx context.Context, u *domain.UserCandidate) validation.Verdict {
	return uc.user.Validate(u)
}

func (uc *registrationUsecase) InspectUser(ctx context.Context, u *domain.UserCandidate) validation.Verdict {
	return uc.user.Exhaustive().Validate(u)
}

// RegisterUser submits the form upstream only when every rule passes
func (uc *registrationUsecase) RegisterUser(ctx context.Context, u *domain.UserCandidate) (*domain.SubmissionResult, error) {
	if verdict := uc.user.Validate(u); !verdict.Valid() {
		return nil, registrationInvalid(verdict)
	}

	if err := uc.validate.Struct(u); err != nil {
		logger.Log.Error("User payload rejected", "errors", validation.FormatValidationErrors(err), "request_id", requestID(ctx))
		return nil, apperror.Internal(fmt.Errorf("user payload: %w", err))
	}

	if err := uc.gateway.SubmitUser(ctx, u); err != nil {
		logger.Log.Error("User registration failed", "error", err, "request_id", requestID(ctx))
		return nil, apperror.SubmissionFailure(msgRegistrationFailed, fmt.Errorf("submit user: %w", err))
	}

	logger.Log.Info("User registered", "request_id", requestID(ctx))
	return &domain.SubmissionResult{
		Message:  "User registered successfully!",
		NextView: domain.ViewUserLogin,
	}, nil
}

// registrationInvalid surfaces the first message as the alert text
func registrationInvalid(v validation.Verdict) error {
	messages := v.Messages()
	return apperror.ValidationFailure(messages[0], RegistrationMessages{Messages: messages})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}

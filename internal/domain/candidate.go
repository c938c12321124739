package domain

import (
	"context"
	"encoding/json"

	"go-jobportal-forms/pkg/validation"
)

// Follow-up views after a successful registration
const (
	ViewRecruiterLogin = "/loginrecruiter"
	ViewUserLogin      = "/loginuser"
)

// RecruiterCandidate is a recruiter registration form. It is sent upstream
// in the same shape it arrives in.
type RecruiterCandidate struct {
	Mobile          string `json:"mobile" validate:"required,mobile10"`
	FirstName       string `json:"firstName" validate:"required,letters"`
	LastName        string `json:"lastName" validate:"required,letters"`
	Email           string `json:"email" validate:"required"`
	Age             Age    `json:"age"`
	Linkedin        string `json:"linkedin" validate:"required,linkedin_url"`
	Student         Flag   `json:"student"`
	College         string `json:"college"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// UnmarshalJSON also accepts linkedinProfileUrl and isStudent for linkedin
// and student. The canonical key wins when both are present.
func (r *RecruiterCandidate) UnmarshalJSON(data []byte) error {
	type plain RecruiterCandidate
	aux := struct {
		*plain
		Linkedin       *string `json:"linkedin"`
		Student        *Flag   `json:"student"`
		LegacyLinkedin *string `json:"linkedinProfileUrl"`
		LegacyStudent  *Flag   `json:"isStudent"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	pick(&r.Linkedin, aux.Linkedin, aux.LegacyLinkedin)
	pick(&r.Student, aux.Student, aux.LegacyStudent)
	return nil
}

// UserCandidate is a job-seeker registration form. LinkedinLink is optional.
type UserCandidate struct {
	Mobile          string `json:"mobile" validate:"required,mobile10"`
	FirstName       string `json:"firstName" validate:"required,letters"`
	LastName        string `json:"lastName" validate:"required,letters"`
	Email           string `json:"email" validate:"required"`
	Age             Age    `json:"age"`
	LinkedinLink    string `json:"linkedinLink,omitempty"`
	Student         Flag   `json:"student"`
	College         string `json:"college,omitempty"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// UnmarshalJSON also accepts linkedinProfileUrl and isStudent for
// linkedinLink and student.
func (u *UserCandidate) UnmarshalJSON(data []byte) error {
	type plain UserCandidate
	aux := struct {
		*plain
		LinkedinLink   *string `json:"linkedinLink"`
		Student        *Flag   `json:"student"`
		LegacyLinkedin *string `json:"linkedinProfileUrl"`
		LegacyStudent  *Flag   `json:"isStudent"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	pick(&u.LinkedinLink, aux.LinkedinLink, aux.LegacyLinkedin)
	pick(&u.Student, aux.Student, aux.LegacyStudent)
	return nil
}

func pick[T any](dst *T, canonical, legacy *T) {
	switch {
	case canonical != nil:
		*dst = *canonical
	case legacy != nil:
		*dst = *legacy
	}
}

// RegistrationUsecase validates and submits registration forms
type RegistrationUsecase interface {
	// ValidateRecruiter returns the verdict a submission would get.
	ValidateRecruiter(ctx context.Context, r *RecruiterCandidate) validation.Verdict
	// InspectRecruiter runs every recruiter rule, for inline field checks.
	InspectRecruiter(ctx context.Context, r *RecruiterCandidate) validation.Verdict
	RegisterRecruiter(ctx context.Context, r *RecruiterCandidate) (*SubmissionResult, error)

	ValidateUser(ctx context.Context, u *UserCandidate) validation.Verdict
	InspectUser(ctx context.Context, u *UserCandidate) validation.Verdict
	RegisterUser(ctx context.Context, u *UserCandidate) (*SubmissionResult, error)
}

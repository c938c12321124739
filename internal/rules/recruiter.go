package rules

import (
	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/validation"
)

const (
	recruiterMinAge = 18
	recruiterMaxAge = 90
)

// Recruiter messages. MsgRecruiterNames covers three separate conditions
// (equal names, short first name, non-letters) with one alert.
const (
	MsgRecruiterNames    = "First name and last name cannot be the same, must be > 2 characters, and only letters are allowed."
	MsgRecruiterLastName = "Last name must be > 2 characters and only contain letters."
	MsgMobileTenDigits   = "Mobile number must be exactly 10 digits."
	MsgEmailInvalid      = "Please enter a valid email address."
	MsgAgeRegistration   = "Age must be between 18 and 90."
	MsgRecruiterLinkedin = "Please enter a valid LinkedIn profile URL."
	MsgCollegeTooShort   = "College name must be longer than 5 characters."
	MsgRecruiterPassword = "Password must be at least 7 characters long and contain both letters and numbers."
	MsgRecruiterConfirm  = "Passwords do not match."
)

// RecruiterRules is the recruiter registration table, evaluated in order.
var RecruiterRules = []validation.Rule[*domain.RecruiterCandidate]{
	{Name: "names", Field: "firstName", Check: func(r *domain.RecruiterCandidate) string {
		if r.FirstName == r.LastName || validation.Length(r.FirstName) <= 2 || !validation.IsLetters(r.FirstName) {
			return MsgRecruiterNames
		}
		return ""
	}},
	{Name: "lastName", Field: "lastName", Check: func(r *domain.RecruiterCandidate) string {
		if !validation.IsLetters(r.LastName) || validation.Length(r.LastName) <= 2 {
			return MsgRecruiterLastName
		}
		return ""
	}},
	{Name: "mobile", Field: "mobile", Check: func(r *domain.RecruiterCandidate) string {
		if !validation.IsTenDigits(r.Mobile) {
			return MsgMobileTenDigits
		}
		return ""
	}},
	{Name: "email", Field: "email", Check: func(r *domain.RecruiterCandidate) string {
		if !validation.IsStrictEmail(r.Email) {
			return MsgEmailInvalid
		}
		return ""
	}},
	{Name: "age", Field: "age", Check: func(r *domain.RecruiterCandidate) string {
		if !validation.InRange(r.Age.String(), recruiterMinAge, recruiterMaxAge) {
			return MsgAgeRegistration
		}
		return ""
	}},
	{Name: "linkedin", Field: "linkedin", Check: func(r *domain.RecruiterCandidate) string {
		if !validation.IsLinkedInProfile(r.Linkedin) {
			return MsgRecruiterLinkedin
		}
		return ""
	}},
	{Name: "college", Field: "college", Check: func(r *domain.RecruiterCandidate) string {
		if r.Student && validation.Length(r.College) <= 5 {
			return MsgCollegeTooShort
		}
		return ""
	}},
	{Name: "password", Field: "password", Check: func(r *domain.RecruiterCandidate) string {
		if !validation.IsAlphanumericPassword(r.Password, 7) {
			return MsgRecruiterPassword
		}
		return ""
	}},
	{Name: "confirmPassword", Field: "confirmPassword", Check: func(r *domain.RecruiterCandidate) string {
		if r.ConfirmPassword != r.Password {
			return MsgRecruiterConfirm
		}
		return ""
	}},
}

// NewRecruiterValidator returns a runner that stops at the first failure.
func NewRecruiterValidator() validation.Runner[*domain.RecruiterCandidate] {
	return validation.Runner[*domain.RecruiterCandidate]{
		Rules:              RecruiterRules,
		StopOnFirstFailure: true,
	}
}

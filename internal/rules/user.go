package rules

import (
	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/validation"
)

const (
	MsgUserNames    = "First and last names must be different and longer than 2 characters."
	MsgUserLetters  = "First and last names should only contain letters."
	MsgUserLinkedin = "Please enter a valid LinkedIn profile link."
	MsgUserPassword = "Password must be longer than 6 characters and contain both letters and numbers."
	MsgUserConfirm  = "Passwords do not match"
)

// UserRules is the user registration table, evaluated in order.
var UserRules = []validation.Rule[*domain.UserCandidate]{
	{Name: "names", Field: "firstName", Check: func(u *domain.UserCandidate) string {
		if u.FirstName == u.LastName || validation.Length(u.FirstName) <= 2 || validation.Length(u.LastName) <= 2 {
			return MsgUserNames
		}
		return ""
	}},
	{Name: "letters", Field: "lastName", Check: func(u *domain.UserCandidate) string {
		if !validation.IsLetters(u.FirstName) || !validation.IsLetters(u.LastName) {
			return MsgUserLetters
		}
		return ""
	}},
	{Name: "mobile", Field: "mobile", Check: func(u *domain.UserCandidate) string {
		if !validation.IsTenDigits(u.Mobile) {
			return MsgMobileTenDigits
		}
		return ""
	}},
	{Name: "email", Field: "email", Check: func(u *domain.UserCandidate) string {
		if !validation.ContainsLooseEmail(u.Email) {
			return MsgEmailInvalid
		}
		return ""
	}},
	{Name: "age", Field: "age", Check: func(u *domain.UserCandidate) string {
		if !validation.InRange(u.Age.String(), recruiterMinAge, recruiterMaxAge) {
			return MsgAgeRegistration
		}
		return ""
	}},
	{Name: "linkedin", Field: "linkedinLink", Check: func(u *domain.UserCandidate) string {
		if u.LinkedinLink != "" && !validation.IsLinkedInLink(u.LinkedinLink) {
			return MsgUserLinkedin
		}
		return ""
	}},
	{Name: "college", Field: "college", Check: func(u *domain.UserCandidate) string {
		if u.Student && validation.Length(u.College) <= 5 {
			return MsgCollegeTooShort
		}
		return ""
	}},
	{Name: "password", Field: "password", Check: func(u *domain.UserCandidate) string {
		if validation.Length(u.Password) <= 6 || !validation.HasLetter(u.Password) || !validation.HasDigit(u.Password) {
			return MsgUserPassword
		}
		return ""
	}},
	{Name: "confirmPassword", Field: "confirmPassword", Check: func(u *domain.UserCandidate) string {
		if u.ConfirmPassword != u.Password {
			return MsgUserConfirm
		}
		return ""
	}},
}

// NewUserValidator returns a runner that stops at the first failure.
func NewUserValidator() validation.Runner[*domain.UserCandidate] {
	return validation.Runner[*domain.UserCandidate]{
		Rules:              UserRules,
		StopOnFirstFailure: true,
	}
}

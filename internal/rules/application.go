package rules

import (
	"strings"

	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/validation"
)

const (
	applicationMinAge = 18
	applicationMaxAge = 60
)

const (
	MsgFirstNameRequired = "First name is required."
	MsgLastNameRequired  = "Last name is required."
	MsgEmailRequired     = "Email is required."
	MsgEmailFormat       = "Enter a valid email address."
	MsgMobileRequired    = "Mobile number is required."
	MsgMobileFormat      = "Enter a valid 10-digit mobile number."
	MsgAgeRequired       = "Age is required."
	MsgAgeApplication    = "Age must be between 18 and 60."
	MsgJobRequired       = "Job reference is required."
)

// ApplicationRules is the job application table. Every rule runs.
var ApplicationRules = []validation.Rule[*domain.JobApplication]{
	{Name: "firstName", Field: "firstName", Check: func(a *domain.JobApplication) string {
		if strings.TrimSpace(a.FirstName) == "" {
			return MsgFirstNameRequired
		}
		return ""
	}},
	{Name: "lastName", Field: "lastName", Check: func(a *domain.JobApplication) string {
		if strings.TrimSpace(a.LastName) == "" {
			return MsgLastNameRequired
		}
		return ""
	}},
	{Name: "email", Field: "email", Check: func(a *domain.JobApplication) string {
		switch {
		case strings.TrimSpace(a.Email) == "":
			return MsgEmailRequired
		case !validation.IsSimpleEmail(a.Email):
			return MsgEmailFormat
		}
		return ""
	}},
	{Name: "mobile", Field: "mobile", Check: func(a *domain.JobApplication) string {
		switch {
		case strings.TrimSpace(a.Mobile) == "":
			return MsgMobileRequired
		case !validation.IsMobileIN(a.Mobile):
			return MsgMobileFormat
		}
		return ""
	}},
	{Name: "age", Field: "age", Check: func(a *domain.JobApplication) string {
		switch {
		case a.Age == "":
			return MsgAgeRequired
		case !validation.InRange(a.Age.String(), applicationMinAge, applicationMaxAge):
			return MsgAgeApplication
		}
		return ""
	}},
	{Name: "jobId", Field: "jobId", Check: func(a *domain.JobApplication) string {
		if strings.TrimSpace(a.JobID) == "" {
			return MsgJobRequired
		}
		return ""
	}},
}

// NewApplicationValidator returns a runner that collects every failure.
func NewApplicationValidator() validation.Runner[*domain.JobApplication] {
	return validation.Runner[*domain.JobApplication]{
		Rules: ApplicationRules,
	}
}

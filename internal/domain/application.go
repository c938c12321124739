package domain

import (
	"context"

	"go-jobportal-forms/pkg/validation"
)

// ViewUserHome is where a user lands after applying
const ViewUserHome = "/user"

// JobApplication is the job application form. JobID comes from the route,
// never from the submitted body.
type JobApplication struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Age       Age    `json:"age"`
	JobID     string `json:"-"`
}

// JobRef is a nested reference to a job posting
type JobRef struct {
	ID string `json:"id" validate:"required"`
}

// ApplicationPayload is the document sent upstream for a job application
type ApplicationPayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,simple_email"`
	Mobile    string `json:"mobile" validate:"required,mobile_in"`
	Age       Age    `json:"age" validate:"required"`
	Job       JobRef `json:"job"`
}

// NewApplicationPayload reshapes an application, wrapping the job id into a
// nested reference.
func NewApplicationPayload(app *JobApplication) *ApplicationPayload {
	return &ApplicationPayload{
		FirstName: app.FirstName,
		LastName:  app.LastName,
		Email:     app.Email,
		Mobile:    app.Mobile,
		Age:       app.Age,
		Job:       JobRef{ID: app.JobID},
	}
}

// ApplicationUsecase validates and submits job applications
type ApplicationUsecase interface {
	Validate(ctx context.Context, app *JobApplication) validation.Verdict
	Apply(ctx context.Context, app *JobApplication) (*SubmissionResult, error)
}

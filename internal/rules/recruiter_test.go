package rules_test

import (
	"testing"

	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/internal/rules"

	"github.com/stretchr/testify/assert"
)

func validRecruiter() *domain.RecruiterCandidate {
	return &domain.RecruiterCandidate{
		Mobile:          "9876543210",
		FirstName:       "Priya",
		LastName:        "Sharma",
		Email:           "priya.sharma@hire.com",
		Age:             "34",
		Linkedin:        "https://www.linkedin.com/in/priya",
		Password:        "hire2024",
		ConfirmPassword: "hire2024",
	}
}

func recruiterMessages(r *domain.RecruiterCandidate) []string {
	return rules.NewRecruiterValidator().Validate(r).Messages()
}

func TestRecruiterRules_Valid(t *testing.T) {
	v := rules.NewRecruiterValidator().Validate(validRecruiter())
	assert.True(t, v.Valid())
}

func TestRecruiterRules_Names(t *testing.T) {
	t.Run("equal names fail regardless of other fields", func(t *testing.T) {
		r := &domain.RecruiterCandidate{FirstName: "Alex", LastName: "Alex"}
		assert.Equal(t, []string{rules.MsgRecruiterNames}, recruiterMessages(r))

		r = validRecruiter()
		r.LastName = r.FirstName
		assert.Equal(t, []string{rules.MsgRecruiterNames}, recruiterMessages(r))
	})

	t.Run("short first name", func(t *testing.T) {
		r := validRecruiter()
		r.FirstName = "Al"
		assert.Equal(t, []string{rules.MsgRecruiterNames}, recruiterMessages(r))
	})

	t.Run("first name with digits", func(t *testing.T) {
		r := validRecruiter()
		r.FirstName = "Priya2"
		assert.Equal(t, []string{rules.MsgRecruiterNames}, recruiterMessages(r))
	})

	t.Run("bad last name", func(t *testing.T) {
		r := validRecruiter()
		r.LastName = "Li"
		assert.Equal(t, []string{rules.MsgRecruiterLastName}, recruiterMessages(r))

		r.LastName = "Sh4rma"
		assert.Equal(t, []string{rules.MsgRecruiterLastName}, recruiterMessages(r))
	})
}

func TestRecruiterRules_Mobile(t *testing.T) {
	for _, mobile := range []string{"123", "12345678901", "12345abcde", ""} {
		r := validRecruiter()
		r.Mobile = mobile
		assert.Equal(t, []string{rules.MsgMobileTenDigits}, recruiterMessages(r), mobile)
	}
}

func TestRecruiterRules_Email(t *testing.T) {
	for _, email := range []string{"priya", "priya@hire", "priya@hire.technology", "pri ya@hire.com"} {
		r := validRecruiter()
		r.Email = email
		assert.Equal(t, []string{rules.MsgEmailInvalid}, recruiterMessages(r), email)
	}
}

func TestRecruiterRules_Age(t *testing.T) {
	tests := []struct {
		age   domain.Age
		valid bool
	}{
		{"17", false},
		{"18", true},
		{"90", true},
		{"91", false},
		{"", false},
		{"old", false},
	}
	for _, tt := range tests {
		r := validRecruiter()
		r.Age = tt.age
		v := rules.NewRecruiterValidator().Validate(r)
		assert.Equal(t, tt.valid, v.Valid(), string(tt.age))
		if !tt.valid {
			assert.Equal(t, []string{rules.MsgAgeRegistration}, v.Messages())
		}
	}
}

func TestRecruiterRules_Linkedin(t *testing.T) {
	r := validRecruiter()
	r.Linkedin = "https://linkedin.com/in/x"
	assert.Empty(t, recruiterMessages(r))

	r.Linkedin = "https://notlinkedin.com"
	assert.Equal(t, []string{rules.MsgRecruiterLinkedin}, recruiterMessages(r))

	r.Linkedin = ""
	assert.Equal(t, []string{rules.MsgRecruiterLinkedin}, recruiterMessages(r))
}

func TestRecruiterRules_College(t *testing.T) {
	r := validRecruiter()
	r.Student = false
	r.College = ""
	assert.Empty(t, recruiterMessages(r))

	r.Student = true
	r.College = "IITB"
	assert.Equal(t, []string{rules.MsgCollegeTooShort}, recruiterMessages(r))

	r.College = "IIT Bombay"
	assert.Empty(t, recruiterMessages(r))
}

func TestRecruiterRules_Password(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"abc1234", true},
		{"abcdefg", false},
		{"1234567", false},
		{"abc123", false},
		{"abc123!", false},
	}
	for _, tt := range tests {
		r := validRecruiter()
		r.Password = tt.password
		r.ConfirmPassword = tt.password
		v := rules.NewRecruiterValidator().Validate(r)
		assert.Equal(t, tt.valid, v.Valid(), tt.password)
	}

	r := validRecruiter()
	r.ConfirmPassword = "other2024"
	assert.Equal(t, []string{rules.MsgRecruiterConfirm}, recruiterMessages(r))
}

func TestRecruiterRules_StopsAtFirstFailure(t *testing.T) {
	r := validRecruiter()
	r.Mobile = "123"
	r.Email = "bad"
	r.Age = "5"
	assert.Equal(t, []string{rules.MsgMobileTenDigits}, recruiterMessages(r))
}

func TestRecruiterRules_Idempotent(t *testing.T) {
	r := validRecruiter()
	r.Email = "bad"
	validator := rules.NewRecruiterValidator()
	assert.Equal(t, validator.Validate(r), validator.Validate(r))
}

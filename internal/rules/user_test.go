package rules_test

import (
	"testing"

	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/internal/rules"

	"github.com/stretchr/testify/assert"
)

func validUser() *domain.UserCandidate {
	return &domain.UserCandidate{
		Mobile:          "9123456780",
		FirstName:       "Rahul",
		LastName:        "Verma",
		Email:           "rahul@jobs.in",
		Age:             "22",
		Student:         true,
		College:         "Delhi University",
		Password:        "seeker99",
		ConfirmPassword: "seeker99",
	}
}

func userMessages(u *domain.UserCandidate) []string {
	return rules.NewUserValidator().Validate(u).Messages()
}

func TestUserRules_Valid(t *testing.T) {
	assert.True(t, rules.NewUserValidator().Validate(validUser()).Valid())
}

func TestUserRules_Names(t *testing.T) {
	u := validUser()
	u.LastName = u.FirstName
	assert.Equal(t, []string{rules.MsgUserNames}, userMessages(u))

	u = validUser()
	u.LastName = "Vo"
	assert.Equal(t, []string{rules.MsgUserNames}, userMessages(u))

	t.Run("letters are checked after lengths", func(t *testing.T) {
		u := validUser()
		u.FirstName = "Rahul7"
		assert.Equal(t, []string{rules.MsgUserLetters}, userMessages(u))

		u = validUser()
		u.LastName = "V3rma"
		assert.Equal(t, []string{rules.MsgUserLetters}, userMessages(u))
	})

	t.Run("differs from recruiter on a short name with digits", func(t *testing.T) {
		u := validUser()
		u.FirstName = "R2"
		assert.Equal(t, []string{rules.MsgUserNames}, userMessages(u))

		r := validRecruiter()
		r.LastName = "V2"
		assert.Equal(t, []string{rules.MsgRecruiterLastName}, recruiterMessages(r))
	})
}

func TestUserRules_Email(t *testing.T) {
	u := validUser()
	u.Email = "rahul@jobs.technology"
	assert.Empty(t, userMessages(u))

	u.Email = "rahul@jobs"
	assert.Equal(t, []string{rules.MsgEmailInvalid}, userMessages(u))
}

func TestUserRules_Linkedin(t *testing.T) {
	u := validUser()
	u.LinkedinLink = ""
	assert.Empty(t, userMessages(u))

	u.LinkedinLink = "https://linkedin.com/in/x"
	assert.Empty(t, userMessages(u))

	u.LinkedinLink = "http://example.com"
	assert.Equal(t, []string{rules.MsgUserLinkedin}, userMessages(u))
}

func TestUserRules_Password(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"abc123", false},
		{"abc1234", true},
		{"abcdefg", false},
		{"abc123!", true},
	}
	for _, tt := range tests {
		u := validUser()
		u.Password = tt.password
		u.ConfirmPassword = tt.password
		v := rules.NewUserValidator().Validate(u)
		assert.Equal(t, tt.valid, v.Valid(), tt.password)
		if !tt.valid {
			assert.Equal(t, []string{rules.MsgUserPassword}, v.Messages())
		}
	}

	u := validUser()
	u.ConfirmPassword = "different1"
	assert.Equal(t, []string{rules.MsgUserConfirm}, userMessages(u))
}

func TestUserRules_CollegeAndAge(t *testing.T) {
	u := validUser()
	u.College = "DU"
	assert.Equal(t, []string{rules.MsgCollegeTooShort}, userMessages(u))

	u = validUser()
	u.Age = "91"
	assert.Equal(t, []string{rules.MsgAgeRegistration}, userMessages(u))
}

package rules_test

import (
	"testing"

	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/internal/rules"

	"github.com/stretchr/testify/assert"
)

func validApplication() *domain.JobApplication {
	return &domain.JobApplication{
		FirstName: "Meera",
		LastName:  "Iyer",
		Email:     "meera@mail.com",
		Mobile:    "9876543210",
		Age:       "27",
		JobID:     "17",
	}
}

func applicationFields(a *domain.JobApplication) map[string]string {
	return rules.NewApplicationValidator().Validate(a).Fields()
}

func TestApplicationRules_Valid(t *testing.T) {
	assert.True(t, rules.NewApplicationValidator().Validate(validApplication()).Valid())
}

func TestApplicationRules_Mobile(t *testing.T) {
	a := validApplication()
	a.Mobile = "1234567890"
	assert.Equal(t, map[string]string{"mobile": rules.MsgMobileFormat}, applicationFields(a))

	a.Mobile = ""
	assert.Equal(t, map[string]string{"mobile": rules.MsgMobileRequired}, applicationFields(a))
	assert.Equal(t, "Mobile number is required.", applicationFields(a)["mobile"])
}

func TestApplicationRules_AggregatesEveryField(t *testing.T) {
	a := validApplication()
	a.FirstName = ""
	a.Email = ""

	fields := applicationFields(a)
	assert.Len(t, fields, 2)
	assert.Equal(t, rules.MsgFirstNameRequired, fields["firstName"])
	assert.Equal(t, rules.MsgEmailRequired, fields["email"])

	t.Run("blank record reports every field", func(t *testing.T) {
		fields := applicationFields(&domain.JobApplication{})
		assert.Equal(t, map[string]string{
			"firstName": rules.MsgFirstNameRequired,
			"lastName":  rules.MsgLastNameRequired,
			"email":     rules.MsgEmailRequired,
			"mobile":    rules.MsgMobileRequired,
			"age":       rules.MsgAgeRequired,
			"jobId":     rules.MsgJobRequired,
		}, fields)
	})
}

func TestApplicationRules_Names(t *testing.T) {
	a := validApplication()
	a.FirstName = "   "
	a.LastName = "d'Souza 2"
	assert.Equal(t, map[string]string{"firstName": rules.MsgFirstNameRequired}, applicationFields(a))
}

func TestApplicationRules_Email(t *testing.T) {
	a := validApplication()
	a.Email = "meera@mail"
	assert.Equal(t, rules.MsgEmailFormat, applicationFields(a)["email"])

	a.Email = "meera@mail.company"
	assert.Empty(t, applicationFields(a))
}

func TestApplicationRules_Age(t *testing.T) {
	tests := []struct {
		age  domain.Age
		want string
	}{
		{"", rules.MsgAgeRequired},
		{"17", rules.MsgAgeApplication},
		{"18", ""},
		{"60", ""},
		{"61", rules.MsgAgeApplication},
		{"0", rules.MsgAgeApplication},
	}
	for _, tt := range tests {
		a := validApplication()
		a.Age = tt.age
		assert.Equal(t, tt.want, applicationFields(a)["age"], string(tt.age))
	}
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Class string `form:"class" validate:"required"`
	Note  string `validate:"max=5"`
}

func TestPhonePattern(t *testing.T) {
	valid := []string{"+91-9289071052", "9289071052", "+91 93544 53092", "011-2345678"}
	invalid := []string{"", "12345", "phone", "+91-92890-abc", "++919289071052", "9289071052-"}

	for _, p := range valid {
		assert.True(t, CompiledPatterns.Phone.MatchString(p), p)
	}
	for _, p := range invalid {
		assert.False(t, CompiledPatterns.Phone.MatchString(p), p)
	}
}

func TestFieldErrors(t *testing.T) {
	v := New()

	err := v.Struct(form{Name: "R", Phone: "abc", Email: "not-an-email", Note: "too long"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]interface{}{
		"name":  "name must be at least 2 characters",
		"phone": "phone must be a valid phone number",
		"email": "email must be a valid email address",
		"class": "class is required",
		"Note":  "Note must be at most 5 characters",
	}, fields)
}

type choice struct {
	ClassInterest string `json:"classInterest" validate:"required_without=CourseID"`
	CourseID      string `json:"courseId"`
	Batch         string `json:"batch" validate:"required_with=CourseID"`
}

func TestFieldErrorsConditionalRequired(t *testing.T) {
	v := New()

	assert.Equal(t, map[string]interface{}{
		"classInterest": "classInterest is required when course id is empty",
	}, FieldErrors(v.Struct(choice{})))

	assert.Equal(t, map[string]interface{}{
		"batch": "batch is required when course id is set",
	}, FieldErrors(v.Struct(choice{CourseID: "11-accounts"})))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "course id", humanize("CourseID"))
	assert.Equal(t, "class interest", humanize("ClassInterest"))
	assert.Equal(t, "name", humanize("Name"))
}

func TestFieldErrorsValid(t *testing.T) {
	err := New().Struct(form{Name: "Riya", Phone: "+91-9289071052", Class: "Class 11"})
	assert.NoError(t, err)
	assert.Nil(t, FieldErrors(err))
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

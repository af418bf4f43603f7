package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Phone numbers: optional leading +, digits with spaces or dashes
	PhonePattern = `^\+?[0-9][0-9 \-]{6,18}[0-9]$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Free-text enquiry message
	MessageMaxLength = 1000
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Phone *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
}

// New returns a validator with the custom tags registered. Field errors are
// reported under their json (or form) names.
func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	return v
}

// FieldErrors maps each failed field to a readable message. It returns nil
// when err is not a validator error.
func FieldErrors(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = FormatFieldError(fe)
	}
	return fields
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "phone":
		return e.Field() + " must be a valid phone number"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "required_without":
		return e.Field() + " is required when " + humanize(e.Param()) + " is empty"
	case "required_with":
		return e.Field() + " is required when " + humanize(e.Param()) + " is set"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// humanize turns a Go field name such as CourseID into "course id".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(field[i-1])) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

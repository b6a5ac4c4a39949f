package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailRegex is a structural check only: local part, '@', domain, '.', and a
// top-level label of at least two letters.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s is a syntactically valid email address.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	return emailRegex.MatchString(s)
}

// RegisterValidators registers custom validators and reports field names
// using their json tags.
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterValidation("email", validateEmail)
	v.RegisterValidation("notblank", validateNotBlank)
}

// New returns a validator with the custom validators registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(strings.TrimSpace(fl.Field().String()))
}

// validateNotBlank fails on missing values and strings that are empty after trimming
func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var result []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			result = append(result, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return result
}

// FirstError returns the first failed field in struct order, or nil when err
// carries no field errors.
func FirstError(err error) *ValidationError {
	errs := FormatValidationError(err)
	if len(errs) == 0 {
		return nil
	}
	return &errs[0]
}

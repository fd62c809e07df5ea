// Package validator adapts go-playground/validator to echo's Validator
// interface and translates failures into a field-to-message map.
package validator

import (
	"reflect"
	"strings"

	"fitfamily/internal/util"

	validatorLib "github.com/go-playground/validator/v10"
)

// ValidationErrors maps request field names to human-readable messages.
// It is both the error returned to handlers and the 400 response body.
type ValidationErrors map[string]string

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, message := range v {
		parts = append(parts, field+": "+message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// EchoValidator wraps the validator library for echo.
type EchoValidator struct {
	validate *validatorLib.Validate
}

// New creates an EchoValidator with the join code rule registered and field
// names taken from json tags, so error keys match the request payload.
func New() *EchoValidator {
	validate := validatorLib.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	// joincode validates the FIT-XXXX format of family join codes.
	_ = validate.RegisterValidation("joincode", func(fl validatorLib.FieldLevel) bool {
		return util.JoinCodePattern.MatchString(fl.Field().String())
	})

	return &EchoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validatorLib.ValidationErrors)
	if !ok {
		return err
	}

	out := make(ValidationErrors, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		out[fieldError.Field()] = messageFor(fieldError)
	}

	return out
}

func messageFor(fieldError validatorLib.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please provide a valid email address"
	case "min":
		return "Must be at least " + fieldError.Param() + " characters"
	case "max":
		return "Must be at most " + fieldError.Param() + " characters"
	case "oneof":
		return "Must be one of: " + fieldError.Param()
	case "joincode":
		return "Invalid join code format. Expected format: FIT-XXXX"
	default:
		return "Invalid value"
	}
}

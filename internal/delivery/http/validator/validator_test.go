package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type joinPayload struct {
	JoinCode string `json:"joinCode" validate:"required,joincode"`
}

func TestValidate_ValidPayloadPasses(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldNamesComeFromJSONTags(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:     "John Doe",
		Email:    "not-an-email",
		Password: "123",
	})
	require.Error(t, err)

	var validationErrors ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Len(t, validationErrors, 2)
	assert.Equal(t, "Please provide a valid email address", validationErrors["email"])
	assert.Equal(t, "Must be at least 6 characters", validationErrors["password"])
}

func TestValidate_MissingFieldsAreRequired(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{})
	require.Error(t, err)

	var validationErrors ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "This field is required", validationErrors["name"])
	assert.Equal(t, "This field is required", validationErrors["email"])
	assert.Equal(t, "This field is required", validationErrors["password"])
}

func TestValidate_JoinCodeFormat(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&joinPayload{JoinCode: "FIT-A3X9"}))

	for _, code := range []string{"FIT-a3x9", "FIT-A3X", "FITA3X9", "fit-A3X9", "FIT-A3X99"} {
		err := v.Validate(&joinPayload{JoinCode: code})
		require.Error(t, err, "code %q should be rejected", code)

		var validationErrors ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "Invalid join code format. Expected format: FIT-XXXX", validationErrors["joinCode"])
	}
}

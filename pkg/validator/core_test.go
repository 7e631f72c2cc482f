package validator_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oafilali/buy01/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "email: is required")
		assert.Contains(t, errorMsg, "password: too short")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()
	errs := validator.ValidationErrors{
		{Field: "password", Code: validator.CodeMinLength, Message: "too short"},
		{Field: "email", Code: validator.CodeEmail, Message: "bad email"},
		{Field: "password", Code: validator.CodeRequired, Message: "required"},
	}

	t.Run("has reports fields with errors", func(t *testing.T) {
		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("has code reports rule codes", func(t *testing.T) {
		assert.True(t, errs.HasCode(validator.CodeEmail))
		assert.False(t, errs.HasCode(validator.CodeMismatch))
	})

	t.Run("get returns messages in order", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "required"}, errs.Get("password"))
		assert.Empty(t, errs.Get("name"))
	})

	t.Run("for field keeps order and drops other fields", func(t *testing.T) {
		set := errs.ForField("password")
		require.Len(t, set, 2)
		assert.Equal(t, validator.CodeMinLength, set[0].Code)
		assert.Equal(t, validator.CodeRequired, set[1].Code)
		assert.Equal(t, set, validator.ValidationErrors(errs.GetErrors("password")))
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", "a@b.co"),
			validator.MinLen("password", "secret", 6),
		)
		assert.NoError(t, err)
	})

	t.Run("returns ValidationErrors when rules fail", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", ""),
			validator.MinLen("password", "abc", 6),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "password", errs[1].Field)
	})

	t.Run("skips nil rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply(nil))
		assert.Empty(t, validator.Collect(nil, validator.Required("name", "x")))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()
	t.Run("extracts from wrapped error", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "name", Message: "required"}}
		wrapped := errors.Join(errors.New("submit failed"), errs)

		assert.True(t, validator.IsValidationError(wrapped))
		assert.Equal(t, errs, validator.ExtractValidationErrors(wrapped))
	})

	t.Run("returns nil for non validation errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestValidationError_Serializable(t *testing.T) {
	t.Parallel()
	errs := validator.Price("price", "-5")()
	require.Len(t, errs, 1)

	data, err := json.Marshal(errs[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "price", decoded["field"])
	assert.Equal(t, "below_minimum", decoded["kind"])
	assert.Equal(t, "min_price", decoded["code"])
	assert.Equal(t, "Price must be at least €0.01", decoded["message"])

	params, ok := decoded["params"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.01, params["min"], 1e-9)
	assert.InDelta(t, -5.0, params["actual"], 1e-9)

	assert.Equal(t, -5.0, errs[0].Param("actual"))
	assert.Nil(t, errs[0].Param("missing"))
}

func TestFormatFieldName(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		in   string
		want string
	}{
		{"confirmPassword", "Confirm Password"},
		{"password", "Password"},
		{"currentPassword", "Current Password"},
		{"Email", "Email"},
		{"firstName", "First Name"},
		{"userID", "User I D"},
		{"price", "Price"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, validator.FormatFieldName(tc.in), "input %q", tc.in)
	}
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oafilali/buy01/pkg/validator"
)

func TestValidateLogin(t *testing.T) {
	t.Parallel()
	assert.Empty(t, validator.ValidateLogin("user@example.com", "secret"))

	errs := validator.ValidateLogin("", "")
	assert.Equal(t, []string{"email", "password"}, errs.Fields())

	errs = validator.ValidateLogin("nope", "secret")
	require.Len(t, errs, 1)
	assert.Equal(t, validator.CodeEmail, errs[0].Code)
}

func TestValidateRegistration(t *testing.T) {
	t.Parallel()
	valid := validator.Registration{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            validator.RoleSeller,
	}

	t.Run("valid registration", func(t *testing.T) {
		assert.Empty(t, validator.ValidateRegistration(valid))
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		r := valid
		r.ConfirmPassword = "secret2"
		errs := validator.ValidateRegistration(r)
		require.Len(t, errs, 1)
		assert.Equal(t, "Password and Confirm Password do not match", errs[0].Message)
	})

	t.Run("name length bounds", func(t *testing.T) {
		r := valid
		r.Name = "A"
		assert.True(t, validator.ValidateRegistration(r).HasCode(validator.CodeMinLength))

		r.Name = string(make([]byte, 51))
		assert.True(t, validator.ValidateRegistration(r).HasCode(validator.CodeMaxLength))
	})

	t.Run("unknown role", func(t *testing.T) {
		r := valid
		r.Role = "ADMIN"
		errs := validator.ValidateRegistration(r)
		require.Len(t, errs, 1)
		assert.Equal(t, "role", errs[0].Field)
		assert.Equal(t, validator.CodePattern, errs[0].Code)
	})

	t.Run("empty form reports every required field", func(t *testing.T) {
		errs := validator.ValidateRegistration(validator.Registration{})
		for _, field := range []string{"name", "email", "password", "confirmPassword", "role"} {
			assert.True(t, errs.Has(field), "field %s", field)
		}
	})
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()
	assert.Empty(t, validator.ValidateProfile("Bo"))
	assert.True(t, validator.ValidateProfile("").HasCode(validator.CodeRequired))
	assert.True(t, validator.ValidateProfile("B").HasCode(validator.CodeMinLength))
}

func TestValidatePasswordChange(t *testing.T) {
	t.Parallel()
	assert.Empty(t, validator.ValidatePasswordChange("oldpass", "newpass", "newpass"))

	errs := validator.ValidatePasswordChange("oldpass", "newpass", "newpazz")
	require.Len(t, errs, 1)
	assert.Equal(t, validator.CodePasswordMismatch, errs[0].Code)

	errs = validator.ValidatePasswordChange("", "abc", "abc")
	assert.True(t, errs.Has("currentPassword"))
	assert.Len(t, errs.ForField("newPassword"), 1)
}

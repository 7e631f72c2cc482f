package validator

import "slices"

// Account roles accepted at registration.
const (
	RoleClient = "CLIENT"
	RoleSeller = "SELLER"
)

// Password and name length limits shared by the account forms.
const (
	MinPasswordLength = 6
	MinNameLength     = 2
	MaxNameLength     = 50
)

// Registration holds the values of the sign-up form.
type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// ValidateLogin checks the sign-in form.
func ValidateLogin(email, password string) ValidationErrors {
	return Collect(
		Required("email", email),
		ValidEmail("email", email),
		Required("password", password),
	)
}

// ValidateRegistration checks the sign-up form, including the password
// confirmation.
func ValidateRegistration(r Registration) ValidationErrors {
	return Collect(
		Required("name", r.Name),
		MinLen("name", r.Name, MinNameLength),
		MaxLen("name", r.Name, MaxNameLength),
		Required("email", r.Email),
		ValidEmail("email", r.Email),
		Required("password", r.Password),
		MinLen("password", r.Password, MinPasswordLength),
		Required("confirmPassword", r.ConfirmPassword),
		Required("role", r.Role),
		validRole("role", r.Role),
		Match("password", r.Password, "confirmPassword", r.ConfirmPassword),
	)
}

// ValidateProfile checks the profile editor form.
func ValidateProfile(name string) ValidationErrors {
	return Collect(
		Required("name", name),
		MinLen("name", name, MinNameLength),
	)
}

// ValidatePasswordChange checks the change-password form.
func ValidatePasswordChange(current, next, confirm string) ValidationErrors {
	return Collect(
		Required("currentPassword", current),
		MinLen("currentPassword", current, MinPasswordLength),
		Required("newPassword", next),
		MinLen("newPassword", next, MinPasswordLength),
		Required("confirmPassword", confirm),
		MinLen("confirmPassword", confirm, MinPasswordLength),
		PasswordConfirmation("newPassword", next, "confirmPassword", confirm),
	)
}

func validRole(field, value string) Rule {
	return newRule(
		func() bool { return value == "" || slices.Contains([]string{RoleClient, RoleSeller}, value) },
		ValidationError{
			Field:          field,
			Kind:           KindPatternMismatch,
			Code:           CodePattern,
			Message:        label(field) + " has an invalid format",
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"actualValue": value,
			},
		},
	)
}

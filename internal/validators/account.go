package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/azimovr/go-user-admin/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the unique display handle of an account.
	FieldUsername = "username"

	// FieldEmail targets the unique contact address of an account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext credential of a payload.
	FieldPassword = "password"

	// FieldImage targets the optional avatar URL of a payload.
	FieldImage = "image"
)

// Username and password length constraints of the registration and update
// schemas.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 6
)

// emailPattern accepts anything of the form <no-spaces>@<no-spaces>.<no-spaces>.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AccountValidator implements the Validator interface for account payloads:
// RegisterRequest and UpdateRequest.
//
// Pointer inputs are normalized in place before checking: usernames are
// trimmed, emails are trimmed and lowercased. Value inputs are validated
// against their normalized form without mutation.
//
// On failure Validate returns a [ValidationErrors] carrying every violation
// found, not just the first one.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator
// and returns it as the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted; only pointer forms are normalized in place.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.UpdateRequest / *models.UpdateRequest
//
// Returns ErrUnsupportedType if obj does not match any known model,
// ErrUnknownField if an unrecognized field name is requested, and
// a [ValidationErrors] listing every violation otherwise.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.RegisterRequest:
		normalizeRegisterRequest(value)
		return v.validateRegisterRequest(ctx, *value, fields...)
	case models.RegisterRequest:
		normalizeRegisterRequest(&value)
		return v.validateRegisterRequest(ctx, value, fields...)

	case *models.UpdateRequest:
		normalizeUpdateRequest(value)
		return v.validateUpdateRequest(ctx, *value, fields...)
	case models.UpdateRequest:
		normalizeUpdateRequest(&value)
		return v.validateUpdateRequest(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func normalizeRegisterRequest(request *models.RegisterRequest) {
	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func normalizeUpdateRequest(request *models.UpdateRequest) {
	if request.Username != nil {
		trimmed := strings.TrimSpace(*request.Username)
		request.Username = &trimmed
	}
	if request.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*request.Email))
		request.Email = &lowered
	}
}

// validateRegisterRequest validates the registration schema: username,
// email and password are all required, image is an optional URI.
//
// Default validated fields (when none specified):
// Username, Email, Password, Image.
func (v *AccountValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldImage}
	}

	var violations ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldUsername:
			violations = appendViolation(violations, checkUsername(request.Username))
		case FieldEmail:
			violations = appendViolation(violations, checkEmail(request.Email))
		case FieldPassword:
			violations = appendViolation(violations, checkPassword(request.Password))
		case FieldImage:
			if request.Image != nil {
				violations = appendViolation(violations, checkImageURI(*request.Image))
			}
		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}

// validateUpdateRequest validates the partial-update schema: every field is
// optional but each present field must satisfy the same constraints as at
// registration, and at least one field must be present.
func (v *AccountValidator) validateUpdateRequest(ctx context.Context, request models.UpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldImage}
	}

	if request.IsEmpty() {
		return ValidationErrors{{
			Field:   "",
			Message: "at least one of username, email, password or image must be provided",
		}}
	}

	var violations ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username != nil {
				violations = appendViolation(violations, checkUsername(*request.Username))
			}
		case FieldEmail:
			if request.Email != nil {
				violations = appendViolation(violations, checkEmail(*request.Email))
			}
		case FieldPassword:
			if request.Password != nil {
				violations = appendViolation(violations, checkPassword(*request.Password))
			}
		case FieldImage:
			if request.Image != nil {
				violations = appendViolation(violations, checkImageURI(*request.Image))
			}
		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}

func appendViolation(violations ValidationErrors, violation *FieldViolation) ValidationErrors {
	if violation == nil {
		return violations
	}
	return append(violations, *violation)
}

func checkUsername(username string) *FieldViolation {
	if username == "" {
		return &FieldViolation{Field: FieldUsername, Message: "username is required"}
	}
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return &FieldViolation{
			Field: FieldUsername,
			Message: fmt.Sprintf("username must be between %d and %d characters",
				UsernameMinLength, UsernameMaxLength),
		}
	}
	return nil
}

func checkEmail(email string) *FieldViolation {
	if email == "" {
		return &FieldViolation{Field: FieldEmail, Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &FieldViolation{Field: FieldEmail, Message: "email must be a valid email address"}
	}
	return nil
}

func checkPassword(password string) *FieldViolation {
	if password == "" {
		return &FieldViolation{Field: FieldPassword, Message: "password is required"}
	}
	if len(password) < PasswordMinLength {
		return &FieldViolation{
			Field:   FieldPassword,
			Message: fmt.Sprintf("password must be at least %d characters", PasswordMinLength),
		}
	}
	return nil
}

// checkImageURI accepts the empty string (explicit "no image") and otherwise
// requires an absolute http(s) URI.
func checkImageURI(image string) *FieldViolation {
	if image == "" {
		return nil
	}

	parsed, err := url.Parse(image)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return &FieldViolation{Field: FieldImage, Message: "image must be a valid absolute URI"}
	}
	return nil
}

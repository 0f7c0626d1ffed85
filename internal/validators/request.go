package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo/models"
	"github.com/go-playground/validator/v10"
)

// FieldEmailFormat restricts validation of a [models.RegisterRequest] to the
// address format check, which runs after the uniqueness lookup.
const FieldEmailFormat = "email_format"

// tagNotEmpty rejects a present but empty value. It is kept apart from
// "min" so both rules can carry their own message on one field.
const tagNotEmpty = "notempty"

// messages maps "<StructField>.<tag>" to the caller-facing text of the rule.
var messages = map[string]string{
	"Email.required":    "Email is required",
	"Email.notempty":    "Email cannot be empty",
	"Email.email":       "Invalid email format",
	"Name.required":     "Name is required",
	"Name.notempty":     "Name cannot be empty",
	"Password.required": "Password is required",
	"Password.notempty": "Password cannot be empty",
	"Password.min":      "Password must be at least 8 characters",
	"Password.max":      "Password must be at most 15 characters",
	"Title.required":    "Title is required",
	"Title.notempty":    "Title cannot be empty",
	"Status.oneof":      "Status must be either PENDING or COMPLETED",
}

// RequestValidator implements [Validator] for every request body accepted by
// the HTTP API. Rules are declared as `validate` struct tags on the request
// models and evaluated by go-playground/validator.
//
// Pointer arguments are normalised in place: emails and names are trimmed and
// a missing todo status defaults to PENDING.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface. The underlying validator caches struct metadata and is
// safe for concurrent use.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterAlias(tagNotEmpty, "min=1")

	return &RequestValidator{validate: validate}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// RegisterRequest, LoginRequest, UpdateProfileRequest and TodoRequest, as
// values or pointers. Only pointers observe the normalised result.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case models.RegisterRequest:
		return v.validateRegister(&value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(value)
	case models.LoginRequest:
		return v.validateLogin(&value)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfile(value)
	case models.UpdateProfileRequest:
		return v.validateUpdateProfile(&value)
	case *models.TodoRequest:
		return v.validateTodo(value)
	case models.TodoRequest:
		return v.validateTodo(&value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(req *models.RegisterRequest, fields ...string) error {
	req.Email = trimPtr(req.Email)
	req.Name = trimPtr(req.Name)

	if len(fields) == 0 {
		return v.structErr(req)
	}

	for _, f := range fields {
		switch f {
		case FieldEmailFormat:
			if err := v.validate.Var(deref(req.Email), "required,email"); err != nil {
				return newValidationError("email", "Email is not valid")
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(req *models.LoginRequest) error {
	req.Email = trimPtr(req.Email)
	return v.structErr(req)
}

func (v *RequestValidator) validateUpdateProfile(req *models.UpdateProfileRequest) error {
	req.Email = trimPtr(req.Email)
	req.Name = trimPtr(req.Name)
	return v.structErr(req)
}

func (v *RequestValidator) validateTodo(req *models.TodoRequest) error {
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	return v.structErr(req)
}

// structErr runs the tag rules of s and converts the first failure into a
// *ValidationError.
func (v *RequestValidator) structErr(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	first := fieldErrs[0]
	msg, ok := messages[first.StructField()+"."+first.Tag()]
	if !ok {
		msg = fmt.Sprintf("%s is invalid", first.StructField())
	}

	return newValidationError(strings.ToLower(first.StructField()), msg)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package user

import (
	"errors"

	"github.com/dmitrymomot/userkit/pkg/validator"
)

// Violation codes surfaced by this package, re-exported so framework code
// translating failures into HTTP error bodies only needs this import.
const (
	CodeMissingRequiredField = validator.CodeMissingRequiredField
	CodeInvalidEmail         = validator.CodeInvalidEmail
	CodeInvalidNickname      = validator.CodeInvalidNickname
	CodeInvalidURL           = validator.CodeInvalidURL
	CodeWeakPassword         = validator.CodeWeakPassword
	CodeEmptyUpdate          = validator.CodeEmptyUpdate
	CodeInvalidUUID          = validator.CodeInvalidUUID

	// CodeInvalidRole marks a role value outside the closed set. It only
	// appears on the response shape: roles are never accepted from
	// untrusted input.
	CodeInvalidRole = "invalid_role"
)

var (
	// ErrUnknownShape is returned by Validate when the shape selector does
	// not name a known record shape.
	ErrUnknownShape = errors.New("user: unknown record shape")

	// ErrShapeMismatch is returned by Validate when the value does not
	// match the selected shape.
	ErrShapeMismatch = errors.New("user: value does not match selected shape")

	// ErrUnknownRole is returned by ParseUserRole for values outside the
	// closed role set.
	ErrUnknownRole = errors.New("user: unknown role")
)

// HasViolation reports whether err contains a validation failure for the
// given field with the given code. An empty code matches any failure on the
// field.
func HasViolation(err error, field, code string) bool {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return false
	}
	if code == "" {
		return verrs.Has(field)
	}
	return verrs.HasCode(field, code)
}

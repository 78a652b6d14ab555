package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric is the constraint used by the numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Violation codes carried by ValidationError. They are part of the API
// contract: the framework layer maps them onto stable error bodies, so
// the string values must not change between releases.
const (
	CodeMissingRequiredField = "missing_required_field"
	CodeInvalidLength        = "invalid_length"
	CodeInvalidEmail         = "invalid_email"
	CodeInvalidNickname      = "invalid_nickname"
	CodeInvalidURL           = "invalid_url"
	CodeWeakPassword         = "weak_password"
	CodeEmptyUpdate          = "empty_update"
	CodeInvalidUUID          = "invalid_uuid"
	CodeInvalidChoice        = "invalid_choice"
)

// ValidationError represents a single rule failure, tagged with the
// offending field name and a stable violation code.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

// ValidationErrors represents all failures found in one validation attempt.
// The slice order equals the order rules were passed to Apply; callers rely
// on it for reproducible error bodies and stable test assertions.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		if err.Field == "" {
			parts = append(parts, err.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether any failure for the field carries the given code.
func (ve ValidationErrors) HasCode(field, code string) bool {
	for _, err := range ve {
		if err.Field == field && err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule: a predicate over an already
// captured value plus the error reported when the predicate fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithCode returns a copy of the rule reporting a different violation code.
// Used where a generic rule participates in a field-specific contract, for
// example a minimum-length check on a nickname.
func (r Rule) WithCode(code string) Rule {
	r.Error.Code = code
	return r
}

// Apply executes every rule and returns the accumulated failures. It never
// short-circuits: each unmet rule contributes one error, in input order.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

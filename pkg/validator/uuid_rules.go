package validator

import (
	"strings"

	"github.com/google/uuid"
)

// ValidUUID validates standard UUID format with pre-validation to avoid
// expensive parsing.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Fast rejection: check length and hyphen positions before parsing
			if len(value) != 36 {
				return false
			}

			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidUUID,
			Message: "must be a valid UUID",
		},
	}
}

// NonNilUUID validates that a UUID is present. The nil UUID marks an absent
// server-assigned identifier, so it reports the missing-field code.
func NonNilUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Check: func() bool {
			return value != uuid.Nil
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMissingRequiredField,
			Message: "field is required",
		},
	}
}

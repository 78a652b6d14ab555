package validator

import "fmt"

// InList validates membership in a closed set of allowed values.
func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidChoice,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
		},
	}
}

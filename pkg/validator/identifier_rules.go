package validator

import "regexp"

var nicknameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// NicknameCharset validates that a string contains only letters, digits,
// underscores, and hyphens. The length bound is a separate rule so that a
// value failing both constraints reports both at once.
func NicknameCharset(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return nicknameRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidNickname,
			Message: "may contain only letters, digits, underscores, and hyphens",
		},
	}
}

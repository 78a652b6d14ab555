package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// PasswordSpecialChars is the fixed set of characters accepted by
// PasswordSpecialChar. Exposed so API documentation can enumerate it.
const PasswordSpecialChars = "!@#$%^&*()_+-=[]{}|;:'\",.<>?/~`"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// PasswordPolicy configures which complexity predicates StrongPassword
// expands to.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
	DenyCommon       bool
}

// DefaultPasswordPolicy returns the creation-time policy: 8+ characters,
// one of each character class, common passwords rejected.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
		DenyCommon:       true,
	}
}

// StrongPassword expands the policy into one rule per predicate so a single
// Apply call reports every unmet condition at once instead of stopping at
// the first. All resulting errors carry the weak-password code.
func StrongPassword(field, value string, policy PasswordPolicy) []Rule {
	rules := []Rule{PasswordMinLen(field, value, policy.MinLength)}

	if policy.RequireUppercase {
		rules = append(rules, PasswordUppercase(field, value))
	}
	if policy.RequireLowercase {
		rules = append(rules, PasswordLowercase(field, value))
	}
	if policy.RequireDigit {
		rules = append(rules, PasswordDigit(field, value))
	}
	if policy.RequireSpecial {
		rules = append(rules, PasswordSpecialChar(field, value))
	}
	if policy.DenyCommon {
		rules = append(rules, NotCommonPassword(field, value))
	}

	return rules
}

func PasswordMinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeWeakPassword,
			Message: fmt.Sprintf("password must be at least %d characters long", min),
		},
	}
}

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeWeakPassword,
			Message: "password must contain at least one uppercase letter",
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeWeakPassword,
			Message: "password must contain at least one lowercase letter",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeWeakPassword,
			Message: "password must contain at least one digit",
		},
	}
}

func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ContainsAny(value, PasswordSpecialChars)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeWeakPassword,
			Message: "password must contain at least one special character",
		},
	}
}

func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, found := commonPasswords[strings.ToLower(value)]
			return !found
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeWeakPassword,
			Message: "password is too common, please choose a different one",
		},
	}
}

package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail validates that a string is a valid email address using RFC 5322
// parsing plus pragmatic checks for typical web use.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Parse with Go's mail parser first
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Reject display-name forms like `John <john@example.com>`;
			// the field must be the bare address.
			if addr.Address != value {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidEmail,
			Message: "must be a valid email address",
		},
	}
}

// HTTPURL validates that a string is an absolute http or https URL with a
// non-empty host. Scheme and host checking is sufficient to block non-web
// and malformed links while accepting real-world profile URLs; full URL
// syntax pedantry is deliberately out of scope.
func HTTPURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			if u.Scheme != "http" && u.Scheme != "https" {
				return false
			}

			return u.Host != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInvalidURL,
			Message: "must be an absolute http or https URL with a host",
		},
	}
}

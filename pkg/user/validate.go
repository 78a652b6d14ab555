package user

import (
	"fmt"

	"github.com/dmitrymomot/userkit/pkg/validator"
)

// Shape selects which record shape a value is validated as.
type Shape string

const (
	ShapeCreate   Shape = "create"
	ShapeUpdate   Shape = "update"
	ShapeResponse Shape = "response"
	ShapeLogin    Shape = "login"
	ShapeList     Shape = "list"
)

// Validate runs the rule set for the selected shape against v and returns
// nil or a validator.ValidationErrors enumerating every violation found.
// It accepts the shape's value or a pointer to it.
func Validate(shape Shape, v any) error {
	switch shape {
	case ShapeCreate:
		if r, ok := deref[CreateRequest](v); ok {
			return r.Validate()
		}
	case ShapeUpdate:
		if r, ok := deref[UpdateRequest](v); ok {
			return r.Validate()
		}
	case ShapeResponse:
		if r, ok := deref[Response](v); ok {
			return r.Validate()
		}
	case ShapeLogin:
		if r, ok := deref[LoginRequest](v); ok {
			return r.Validate()
		}
	case ShapeList:
		if r, ok := deref[ListResponse](v); ok {
			return r.Validate()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	return fmt.Errorf("%w: %q got %T", ErrShapeMismatch, shape, v)
}

func deref[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	if p, ok := v.(*T); ok && p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// rules builds the optional-field rules for the shared core, in field
// declaration order. First name, last name, and bio are free text with no
// constraints; bio is deliberately unbounded.
func (c Core) rules(policy Policy) []validator.Rule {
	var rules []validator.Rule

	if c.Nickname != nil {
		rules = append(rules,
			validator.MinLen("nickname", *c.Nickname, policy.NicknameMinLen).
				WithCode(validator.CodeInvalidNickname),
			validator.NicknameCharset("nickname", *c.Nickname),
		)
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"profile_picture_url", c.ProfilePictureURL},
		{"linkedin_profile_url", c.LinkedinProfileURL},
		{"github_profile_url", c.GithubProfileURL},
	} {
		if f.value != nil {
			rules = append(rules, validator.HTTPURL(f.name, *f.value))
		}
	}

	return rules
}

// Validate checks the registration payload against the default policy.
func (r CreateRequest) Validate() error {
	return r.ValidateWithPolicy(DefaultPolicy())
}

// ValidateWithPolicy collects every violation across all fields: email
// syntax, core field rules, and the full password complexity policy.
func (r CreateRequest) ValidateWithPolicy(policy Policy) error {
	rules := []validator.Rule{validator.Required("email", r.Email)}
	if r.Email != "" {
		rules = append(rules, validator.ValidEmail("email", r.Email))
	}

	rules = append(rules, r.Core.rules(policy)...)

	if r.Password == "" {
		rules = append(rules, validator.Required("password", r.Password))
	} else {
		rules = append(rules, validator.StrongPassword("password", r.Password, policy.Password)...)
	}

	return validator.Apply(rules...)
}

// Validate checks the partial-update payload against the default policy.
func (r UpdateRequest) Validate() error {
	return r.ValidateWithPolicy(DefaultPolicy())
}

// ValidateWithPolicy rejects an effectively empty change-set before any
// per-field rule runs, then applies the same field rules as creation minus
// the password policy.
func (r UpdateRequest) ValidateWithPolicy(policy Policy) error {
	if r.isEmpty() {
		return validator.ValidationErrors{{
			Code:    validator.CodeEmptyUpdate,
			Message: "at least one field must be provided for update",
		}}
	}

	var rules []validator.Rule
	if r.Email != nil {
		rules = append(rules, validator.ValidEmail("email", *r.Email))
	}
	rules = append(rules, r.Core.rules(policy)...)

	return validator.Apply(rules...)
}

// isEmpty reports whether the submitted change-set carries no effective
// value: every field is either absent or present but empty.
func (r UpdateRequest) isEmpty() bool {
	for _, v := range []*string{
		r.Email,
		r.Nickname,
		r.FirstName,
		r.LastName,
		r.Bio,
		r.ProfilePictureURL,
		r.LinkedinProfileURL,
		r.GithubProfileURL,
	} {
		if v != nil && *v != "" {
			return false
		}
	}
	return true
}

// Validate checks the outbound record against the default policy.
func (r Response) Validate() error {
	return r.ValidateWithPolicy(DefaultPolicy())
}

// ValidateWithPolicy verifies the server-assigned fields alongside the
// shared core rules. It exists for outbound assertions and test fixtures;
// inbound payloads never reach this shape.
func (r Response) ValidateWithPolicy(policy Policy) error {
	rules := []validator.Rule{
		validator.NonNilUUID("id", r.ID),
		validator.Required("email", r.Email),
	}
	if r.Email != "" {
		rules = append(rules, validator.ValidEmail("email", r.Email))
	}

	rules = append(rules, r.Core.rules(policy)...)
	rules = append(rules, validator.InList("role", r.Role, Roles()).WithCode(CodeInvalidRole))

	return validator.Apply(rules...)
}

// Validate requires both credential fields and nothing more. Email syntax
// and password strength are creation-time concerns.
func (r LoginRequest) Validate() error {
	return validator.Apply(
		validator.Required("email", r.Email),
		validator.Required("password", r.Password),
	)
}

// Validate checks the page invariants and every contained record. Item
// violations are reported under items[i].<field>.
func (r ListResponse) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Apply(
		validator.MinNum("total", r.Total, 0),
		validator.MinNum("page", r.Page, 1),
		validator.MinNum("size", r.Size, 1),
		validator.MaxNum("items", len(r.Items), r.Size),
	); err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}

	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			for _, ve := range validator.ExtractValidationErrors(err) {
				ve.Field = fmt.Sprintf("items[%d].%s", i, ve.Field)
				errs = append(errs, ve)
			}
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

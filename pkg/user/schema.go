package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/userkit/pkg/validator"
)

// Core holds the optional profile fields shared by every user record shape.
// Pointer fields distinguish absent (nil, always valid) from present but
// empty (rejected wherever a rule applies). Email is declared on each outer
// shape instead, because its optionality differs between them.
type Core struct {
	Nickname           *string `json:"nickname,omitempty"`
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	ProfilePictureURL  *string `json:"profile_picture_url,omitempty"`
	LinkedinProfileURL *string `json:"linkedin_profile_url,omitempty"`
	GithubProfileURL   *string `json:"github_profile_url,omitempty"`
}

// CreateRequest is the untrusted registration payload. Email and password
// are mandatory; the password is checked against the full complexity policy
// here and nowhere else.
type CreateRequest struct {
	Email string `json:"email"`
	Core
	Password string `json:"password"`
}

// UpdateRequest is the untrusted partial-update payload. Every field is
// optional, but at least one must carry a non-empty value.
type UpdateRequest struct {
	Email *string `json:"email,omitempty"`
	Core
}

// Response is the API-visible user record. ID and role are server-assigned
// and never populated from untrusted input. Construct with NewResponse to
// pick up the role default.
type Response struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Core
	Role           UserRole `json:"role"`
	IsProfessional bool     `json:"is_professional"`
}

// NewResponse returns a response record with the defaults applied: role
// AUTHENTICATED, not professional.
func NewResponse(id uuid.UUID, email string) Response {
	return Response{
		ID:    id,
		Email: email,
		Role:  RoleAuthenticated,
	}
}

// LoginRequest carries credentials for an authentication attempt. The email
// is intentionally a loose string and the password skips complexity rules:
// login verifies a credential, it does not grade one.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListResponse is one page of user records.
type ListResponse struct {
	Items []Response `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Size  int        `json:"size"`
}

// ErrorResponse is the API error body contract: a short summary plus an
// optional human-readable elaboration.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse flattens an error into the API error body. Validation
// failures become a summary with per-field details; any other error is
// passed through as the summary.
func NewErrorResponse(err error) ErrorResponse {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return ErrorResponse{Error: err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		if ve.Field == "" {
			details = append(details, ve.Message)
			continue
		}
		details = append(details, ve.Field+": "+ve.Message)
	}

	return ErrorResponse{
		Error:   "Validation failed",
		Details: strings.Join(details, "; "),
	}
}

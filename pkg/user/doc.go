// Package user defines the immutable user-account record shapes exchanged
// at the API boundary and the composite validation applied to each one.
//
// Five shapes form the contract: CreateRequest (registration, with the
// password complexity policy), UpdateRequest (partial update, requiring at
// least one effective change), Response (the public record with
// server-assigned id and role), LoginRequest (loose credential pair), and
// ListResponse (one page of records). ErrorResponse is the error body
// contract for translating validation failures.
//
// Validation is a pure function of the input: each shape's Validate method
// evaluates every applicable rule, collects all violations, and returns
// them in field declaration order as a validator.ValidationErrors. Nothing
// is mutated and no rule depends on another's outcome, so shapes may be
// validated concurrently without synchronization.
//
//	req := user.CreateRequest{Email: email, Password: password}
//	if err := req.Validate(); err != nil {
//		body := user.NewErrorResponse(err) // HTTP 422 payload
//	}
//
// The Validate function offers the same behind a shape selector for callers
// that dispatch dynamically.
package user

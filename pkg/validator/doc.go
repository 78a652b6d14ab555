// Package validator provides a composable set of pure validation rules for
// the user-account record shapes: string presence and length, email and URL
// formats, nickname charset, password complexity, UUIDs, and closed-set
// membership.
//
// Every exported validation function constructs and returns a Rule value
// pairing a boolean Check with the error reported on failure. Rules are
// evaluated with Apply, which runs every rule without short-circuiting and
// aggregates the failures into a ValidationErrors slice implementing the
// error interface. The slice preserves rule order, so error reports are
// deterministic for identical input.
//
// There is no hidden global state beyond the embedded password deny list
// loaded at init; the package is stateless, allocation-light, and safe for
// concurrent use.
//
// # Usage
//
//	err := validator.Apply(
//		validator.Required("email", email),
//		validator.ValidEmail("email", email),
//		validator.HTTPURL("github_profile_url", url),
//	)
//	if err != nil {
//		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//			// iterate over field-level failures
//		}
//	}
//
// Each ValidationError carries the offending field name, a stable violation
// code, and a human-readable message. Frameworks translate the codes into
// API error bodies; the messages are safe to surface to end users.
package validator

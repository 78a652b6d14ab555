// Package sanitizer normalizes untrusted input before validation. All
// functions are pure string transformations; Apply and Compose chain them
// into pipelines.
//
// Sanitization never rejects input, it only canonicalizes it. Run the
// relevant Normalize helper on a field, then validate the result.
package sanitizer

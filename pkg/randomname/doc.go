// Package randomname generates human-friendly nickname suggestions such as
// "swift_otter_4821". Generated names always fit the nickname rules of the
// user shapes, and a Validator hook lets callers add their own acceptance
// check (uniqueness, profanity, and so on).
package randomname

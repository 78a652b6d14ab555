package randomname

import (
	"fmt"
	"math/rand/v2"
)

// maxAttempts bounds the retry loop when a Validator keeps rejecting
// candidates.
const maxAttempts = 100

// Options configures nickname generation.
type Options struct {
	// Separator between words. Defaults to "_". Must stay inside the
	// nickname charset (letters, digits, underscore, hyphen).
	Separator string

	// NumericSuffix appends a 4-digit number for collision avoidance.
	NumericSuffix bool

	// Validator accepts or rejects a candidate. On rejection a new name is
	// generated, up to a fixed number of attempts; the last candidate is
	// returned if all fail.
	Validator func(string) bool
}

// Generate returns a random adjective-noun nickname, e.g. "swift_otter" or
// "brave_falcon_4821" with a numeric suffix. Output always satisfies the
// nickname charset and minimum length used by the user shapes.
func Generate(opts Options) string {
	sep := opts.Separator
	if sep == "" {
		sep = "_"
	}

	var name string
	for range maxAttempts {
		name = adjectives[rand.IntN(len(adjectives))] + sep + nouns[rand.IntN(len(nouns))]
		if opts.NumericSuffix {
			name = fmt.Sprintf("%s%s%04d", name, sep, rand.IntN(10000))
		}
		if opts.Validator == nil || opts.Validator(name) {
			return name
		}
	}
	return name
}

// Nickname returns a suggestion with the default options and a numeric
// suffix, suitable for pre-filling a registration form.
func Nickname() string {
	return Generate(Options{NumericSuffix: true})
}

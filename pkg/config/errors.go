package config

import "errors"

// ErrParseFailed is returned when environment variables cannot be parsed
// into the target struct.
var ErrParseFailed = errors.New("config: failed to parse environment")

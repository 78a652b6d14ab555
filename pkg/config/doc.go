// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Values are parsed with caarlos0/env struct tags and cached per concrete
// type, so every caller observes the same configuration for the lifetime of
// the process. Validation policy knobs (see the user package) are the main
// consumer.
package config

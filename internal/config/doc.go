// Package config loads and validates application settings from defaults,
// an optional config.yaml in the working directory, and COURSE_-prefixed
// environment variables, in increasing order of precedence.
package config

// Package auth provides password hashing and the per-actor bearer token
// service. Each actor type gets its own TokenService built from its own
// secret, which is what keeps admin and user tokens mutually invalid.
package auth

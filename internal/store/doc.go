// Package store defines the persistence interfaces for identities, courses
// and purchases, plus the sentinel errors every backend maps its driver
// errors onto. Implementations live under internal/platform.
package store

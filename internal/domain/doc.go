// Package domain defines the marketplace entities: the two actor types
// (admins and users) sharing one identity shape, courses owned by admins,
// and purchases linking users to courses.
package domain

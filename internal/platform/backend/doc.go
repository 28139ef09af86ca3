// Package backend opens the storage backend named in configuration and
// exposes its identity, course and purchase stores behind the
// internal/store interfaces. It is shared by the server and the operator
// commands under cmd/.
package backend

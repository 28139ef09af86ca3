// Package api handles incoming HTTP requests, request validation and
// response formatting for the admin and user route groups. Handlers are
// thin adapters: each one validates the payload, makes a single store
// (or hasher/token) call and writes the JSON body the clients expect.
package api

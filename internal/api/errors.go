package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/course-api/internal/store"
)

// Client-facing messages. The underlying cause of a failure is logged and
// never returned to the client.
const (
	msgSignupDone           = "Signup done"
	msgSignupFailed         = "Signup failed"
	msgIncorrectCredentials = "Incorrect credentials"
	msgSigninFailed         = "Sign-in failed"
	msgCourseCreated        = "Course created"
	msgCourseUpdated        = "Course updated"
	msgCreateCourseFailed   = "Failed to create course"
	msgUpdateCourseFailed   = "Failed to update course"
	msgListCoursesFailed    = "Failed to list courses"
	msgPurchasesFailed      = "Failed to retrieve purchases"
)

// errIncorrectCredentials is logged when a password does not match. It
// never reaches the client, which cannot tell it apart from an unknown email.
var errIncorrectCredentials = errors.New("password does not match")

// signinErrorStatus maps a failure during signin to a status code and
// client message. An unknown email and a wrong password look the same.
func signinErrorStatus(err error) (int, string) {
	switch {
	case store.IsNotFoundError(err), errors.Is(err, errIncorrectCredentials):
		return http.StatusForbidden, msgIncorrectCredentials
	default:
		return http.StatusInternalServerError, msgSigninFailed
	}
}

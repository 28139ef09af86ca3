package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/course-api/internal/service/auth"
	"github.com/phrazzld/course-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestSigninErrorStatus(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "unknown email",
			err:            store.ErrIdentityNotFound,
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Incorrect credentials",
		},
		{
			name:           "wrapped not found",
			err:            fmt.Errorf("get admin: %w", store.ErrNotFound),
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Incorrect credentials",
		},
		{
			name:           "wrong password",
			err:            errIncorrectCredentials,
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Incorrect credentials",
		},
		{
			name:           "token signing failure",
			err:            fmt.Errorf("sign: %w", auth.ErrWeakSecret),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Sign-in failed",
		},
		{
			name:           "connection failure",
			err:            errors.New("server selection timeout"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Sign-in failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := signinErrorStatus(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

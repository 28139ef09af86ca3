package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newJSONRequest builds a request whose body is payload; a string payload
// is sent verbatim so malformed JSON can be tested.
func newJSONRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	var body []byte
	switch p := payload.(type) {
	case nil:
	case string:
		body = []byte(p)
	default:
		var err error
		body, err = json.Marshal(p)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asActor puts id in the request context the way the gate does.
func asActor(req *http.Request, id uuid.UUID) *http.Request {
	return req.WithContext(shared.WithActorID(req.Context(), id))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/course-api/internal/api"
	"github.com/phrazzld/course-api/internal/api/middleware"
	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/config"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/mocks"
	"github.com/phrazzld/course-api/internal/platform/backend"
	"github.com/phrazzld/course-api/internal/service/auth"
)

const (
	testAdminSecret = "admin-secret-that-is-long-enough-123"
	testUserSecret  = "user-secret-that-is-long-enough-4567"
)

type testServer struct {
	handler   http.Handler
	courses   *mocks.MockCourseStore
	purchases *mocks.MockPurchaseStore
}

func newTestServer(t *testing.T, origins ...string) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error", CORSAllowedOrigins: origins},
		Auth: config.AuthConfig{
			AdminJWTSecret: testAdminSecret,
			UserJWTSecret:  testUserSecret,
			BcryptCost:     4,
		},
	}
	courses := mocks.NewMockCourseStore()
	purchases := mocks.NewMockPurchaseStore()
	stores := &backend.Stores{
		Admins:    mocks.NewMockIdentityStore(domain.ActorAdmin),
		Users:     mocks.NewMockIdentityStore(domain.ActorUser),
		Courses:   courses,
		Purchases: purchases,
	}

	app, err := newApplication(cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)), stores)
	require.NoError(t, err)

	return &testServer{handler: app.setupRouter(), courses: courses, purchases: purchases}
}

func (s *testServer) do(t *testing.T, method, path string, payload any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader = http.NoBody
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, values := range header {
		for _, v := range values {
			req.Header.Set(k, v)
		}
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (s *testServer) signupAndSignin(t *testing.T, actor domain.ActorType, email string) string {
	t.Helper()

	prefix := "/api/v1/" + actor.String()
	rec := s.do(t, http.MethodPost, prefix+"/signup", api.SignupRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, prefix+"/signin", map[string]string{
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token := decode[api.TokenResponse](t, rec).Token
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := newTestServer(t).do(t, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAdminCourseFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	token := srv.signupAndSignin(t, domain.ActorAdmin, "admin@example.com")

	rec := srv.do(t, http.MethodPost, "/api/v1/admin/course", map[string]any{
		"title": "Go for Gophers",
		"price": 49.5,
	}, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	created := decode[api.CourseMutationResponse](t, rec)
	assert.Equal(t, "Course created", created.Message)
	courseID, err := uuid.Parse(created.CourseID)
	require.NoError(t, err)

	rec = srv.do(t, http.MethodPut, "/api/v1/admin/course", map[string]any{
		"courseId": created.CourseID,
		"title":    "Advanced Go",
	}, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Course updated", decode[api.CourseMutationResponse](t, rec).Message)

	stored, ok := srv.courses.Get(courseID)
	require.True(t, ok)
	require.NotNil(t, stored.Title)
	assert.Equal(t, "Advanced Go", *stored.Title)
	require.NotNil(t, stored.Price)
	assert.InDelta(t, 49.5, *stored.Price, 0.0001)

	rec = srv.do(t, http.MethodGet, "/api/v1/admin/course/bulk", nil, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[api.CoursesResponse](t, rec)
	require.Len(t, listed.Courses, 1)
	assert.Equal(t, courseID, listed.Courses[0].ID)
}

func TestUserPurchasesFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	adminToken := srv.signupAndSignin(t, domain.ActorAdmin, "admin@example.com")
	userToken := srv.signupAndSignin(t, domain.ActorUser, "user@example.com")

	rec := srv.do(t, http.MethodPost, "/api/v1/admin/course",
		map[string]any{"title": "Intro"}, bearer(adminToken))
	require.Equal(t, http.StatusOK, rec.Code)
	courseID := uuid.MustParse(decode[api.CourseMutationResponse](t, rec).CourseID)

	rec = srv.do(t, http.MethodGet, "/api/v1/user/purchases", nil, bearer(userToken))
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[api.PurchasesResponse](t, rec)
	assert.Empty(t, empty.Purchases)
	assert.Empty(t, empty.CoursesData)

	userID := userIDFromToken(t, userToken)
	purchase, err := domain.NewPurchase(userID, courseID)
	require.NoError(t, err)
	require.NoError(t, srv.purchases.Create(context.Background(), purchase))

	rec = srv.do(t, http.MethodGet, "/api/v1/user/purchases", nil,
		http.Header{middleware.LegacyTokenHeader: []string{userToken}})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.PurchasesResponse](t, rec)
	require.Len(t, got.Purchases, 1)
	require.Len(t, got.CoursesData, 1)
	assert.Equal(t, courseID, got.CoursesData[0].ID)
}

func TestGateRejectsOtherActorsToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	adminToken := srv.signupAndSignin(t, domain.ActorAdmin, "admin@example.com")
	userToken := srv.signupAndSignin(t, domain.ActorUser, "user@example.com")

	tests := []struct {
		name   string
		method string
		path   string
		header http.Header
	}{
		{"user token on admin route", http.MethodGet, "/api/v1/admin/course/bulk", bearer(userToken)},
		{"admin token on user route", http.MethodGet, "/api/v1/user/purchases", bearer(adminToken)},
		{"missing token", http.MethodPost, "/api/v1/admin/course", nil},
		{"garbage token", http.MethodGet, "/api/v1/user/purchases", bearer("not-a-jwt")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, tc.method, tc.path, nil, tc.header)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, shared.NotSignedInMessage, decode[shared.ErrorResponse](t, rec).Message)
		})
	}
}

func TestSigninWrongPassword(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.signupAndSignin(t, domain.ActorUser, "user@example.com")

	rec := srv.do(t, http.MethodPost, "/api/v1/user/signin", map[string]string{
		"email":    "user@example.com",
		"password": "wrong",
	}, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Incorrect credentials", decode[shared.ErrorResponse](t, rec).Message)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("configured origin is allowed", func(t *testing.T) {
		srv := newTestServer(t, "https://app.example.com")

		rec := srv.do(t, http.MethodGet, "/health", nil,
			http.Header{"Origin": []string{"https://app.example.com"}})

		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no origins leaves CORS headers off", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodGet, "/health", nil,
			http.Header{"Origin": []string{"https://app.example.com"}})

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

// userIDFromToken resolves a user token to the id it was issued for.
func userIDFromToken(t *testing.T, token string) uuid.UUID {
	t.Helper()

	tokens, err := auth.NewTokenService(domain.ActorUser, testUserSecret)
	require.NoError(t, err)
	id, err := tokens.Verify(context.Background(), token)
	require.NoError(t, err)
	return id
}

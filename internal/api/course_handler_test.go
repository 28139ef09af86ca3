package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateCourse(t *testing.T) {
	t.Parallel()

	t.Run("stores course owned by admin", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		handler := NewCourseHandler(courses, discardLogger())
		adminID := uuid.New()

		req := asActor(newJSONRequest(t, http.MethodPost, "/course", map[string]any{
			"title":       "Go in Practice",
			"description": "Services and tooling",
			"imageUrl":    "https://img.example.com/go.png",
			"price":       49.5,
		}), adminID)
		rec := httptest.NewRecorder()
		handler.CreateCourse(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[CourseMutationResponse](t, rec)
		assert.Equal(t, "Course created", body.Message)

		id, err := uuid.Parse(body.CourseID)
		require.NoError(t, err)
		stored, ok := courses.Get(id)
		require.True(t, ok)
		assert.Equal(t, adminID, stored.CreatorID)
		assert.Equal(t, "Go in Practice", *stored.Title)
		assert.InDelta(t, 49.5, *stored.Price, 0.0001)
	})

	t.Run("absent fields stay absent", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		handler := NewCourseHandler(courses, discardLogger())

		rec := httptest.NewRecorder()
		handler.CreateCourse(rec, asActor(newJSONRequest(t, http.MethodPost, "/course", map[string]any{}), uuid.New()))

		require.Equal(t, http.StatusOK, rec.Code)
		id := uuid.MustParse(decodeBody[CourseMutationResponse](t, rec).CourseID)
		stored, ok := courses.Get(id)
		require.True(t, ok)
		assert.Nil(t, stored.Title)
		assert.Nil(t, stored.Price)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		handler := NewCourseHandler(mocks.NewMockCourseStore(), discardLogger())

		rec := httptest.NewRecorder()
		handler.CreateCourse(rec, asActor(newJSONRequest(t, http.MethodPost, "/course", `{"title":`), uuid.New()))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request format", decodeBody[shared.ErrorResponse](t, rec).Message)
	})

	t.Run("price of wrong type", func(t *testing.T) {
		t.Parallel()
		handler := NewCourseHandler(mocks.NewMockCourseStore(), discardLogger())

		rec := httptest.NewRecorder()
		handler.CreateCourse(rec, asActor(newJSONRequest(t, http.MethodPost, "/course",
			map[string]any{"price": "free"}), uuid.New()))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[shared.ErrorResponse](t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "price", body.Errors[0].Field)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		courses := mocks.NewMockCourseStore()
		courses.Err = errors.New("write concern timeout")
		handler := NewCourseHandler(courses, discardLogger())

		rec := httptest.NewRecorder()
		handler.CreateCourse(rec, asActor(newJSONRequest(t, http.MethodPost, "/course", map[string]any{}), uuid.New()))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create course", decodeBody[shared.ErrorResponse](t, rec).Message)
	})

	t.Run("missing actor", func(t *testing.T) {
		t.Parallel()
		handler := NewCourseHandler(mocks.NewMockCourseStore(), discardLogger())

		rec := httptest.NewRecorder()
		handler.CreateCourse(rec, newJSONRequest(t, http.MethodPost, "/course", map[string]any{}))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You are not signed in", decodeBody[shared.ErrorResponse](t, rec).Message)
	})
}

func TestUpdateCourse(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	seed := func(t *testing.T) (*mocks.MockCourseStore, domain.Course) {
		t.Helper()
		course, err := domain.NewCourse(owner, strPtr("Go"), strPtr("Basics"), nil, nil)
		require.NoError(t, err)
		return mocks.NewMockCourseStore(*course), *course
	}

	t.Run("owner updates provided fields only", func(t *testing.T) {
		t.Parallel()
		courses, course := seed(t)
		handler := NewCourseHandler(courses, discardLogger())

		rec := httptest.NewRecorder()
		handler.UpdateCourse(rec, asActor(newJSONRequest(t, http.MethodPut, "/course", map[string]any{
			"courseId": course.ID.String(),
			"title":    "Advanced Go",
			"price":    99,
		}), owner))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[CourseMutationResponse](t, rec)
		assert.Equal(t, "Course updated", body.Message)
		assert.Equal(t, course.ID.String(), body.CourseID)

		stored, _ := courses.Get(course.ID)
		assert.Equal(t, "Advanced Go", *stored.Title)
		assert.Equal(t, "Basics", *stored.Description)
		assert.InDelta(t, 99.0, *stored.Price, 0.0001)
	})

	t.Run("other admin cannot modify but gets 200", func(t *testing.T) {
		t.Parallel()
		courses, course := seed(t)
		handler := NewCourseHandler(courses, discardLogger())

		rec := httptest.NewRecorder()
		handler.UpdateCourse(rec, asActor(newJSONRequest(t, http.MethodPut, "/course", map[string]any{
			"courseId": course.ID.String(),
			"title":    "Hijacked",
		}), uuid.New()))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, course.ID.String(), decodeBody[CourseMutationResponse](t, rec).CourseID)
		stored, _ := courses.Get(course.ID)
		assert.Equal(t, "Go", *stored.Title)
	})

	t.Run("unknown course id gets 200", func(t *testing.T) {
		t.Parallel()
		courses, _ := seed(t)
		handler := NewCourseHandler(courses, discardLogger())
		missing := uuid.New().String()

		rec := httptest.NewRecorder()
		handler.UpdateCourse(rec, asActor(newJSONRequest(t, http.MethodPut, "/course", map[string]any{
			"courseId": missing,
		}), owner))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, missing, decodeBody[CourseMutationResponse](t, rec).CourseID)
	})

	t.Run("course id must be a uuid", func(t *testing.T) {
		t.Parallel()
		courses, _ := seed(t)
		handler := NewCourseHandler(courses, discardLogger())

		rec := httptest.NewRecorder()
		handler.UpdateCourse(rec, asActor(newJSONRequest(t, http.MethodPut, "/course", map[string]any{
			"courseId": "64b7f0c2e4b0a1a2b3c4d5e6",
		}), owner))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[shared.ErrorResponse](t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "courseId", body.Errors[0].Field)
		assert.Equal(t, "invalid_uuid", body.Errors[0].Code)
	})

	t.Run("missing course id", func(t *testing.T) {
		t.Parallel()
		courses, _ := seed(t)
		handler := NewCourseHandler(courses, discardLogger())

		rec := httptest.NewRecorder()
		handler.UpdateCourse(rec, asActor(newJSONRequest(t, http.MethodPut, "/course", map[string]any{
			"title": "x",
		}), owner))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[shared.ErrorResponse](t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "required", body.Errors[0].Code)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		courses, course := seed(t)
		courses.UpdateOwnedFn = func(_ context.Context, _, _ uuid.UUID, _ domain.CoursePatch) (int64, error) {
			return 0, errors.New("not primary")
		}
		handler := NewCourseHandler(courses, discardLogger())

		rec := httptest.NewRecorder()
		handler.UpdateCourse(rec, asActor(newJSONRequest(t, http.MethodPut, "/course", map[string]any{
			"courseId": course.ID.String(),
		}), owner))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to update course", decodeBody[shared.ErrorResponse](t, rec).Message)
	})
}

func TestListCourses(t *testing.T) {
	t.Parallel()

	owner, other := uuid.New(), uuid.New()
	mine, err := domain.NewCourse(owner, strPtr("Mine"), nil, nil, nil)
	require.NoError(t, err)
	theirs, err := domain.NewCourse(other, strPtr("Theirs"), nil, nil, nil)
	require.NoError(t, err)

	handler := NewCourseHandler(mocks.NewMockCourseStore(*mine, *theirs), discardLogger())

	t.Run("only the admin's courses", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		handler.ListCourses(rec, asActor(httptest.NewRequest(http.MethodGet, "/course/bulk", nil), owner))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[CoursesResponse](t, rec)
		require.Len(t, body.Courses, 1)
		assert.Equal(t, mine.ID, body.Courses[0].ID)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		handler.ListCourses(rec, asActor(httptest.NewRequest(http.MethodGet, "/course/bulk", nil), uuid.New()))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"courses":[]}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		failing := mocks.NewMockCourseStore()
		failing.Err = errors.New("cursor killed")
		h := NewCourseHandler(failing, discardLogger())

		rec := httptest.NewRecorder()
		h.ListCourses(rec, asActor(httptest.NewRequest(http.MethodGet, "/course/bulk", nil), owner))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

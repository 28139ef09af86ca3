package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/store"
)

// CourseHandler serves the admin course routes. Every route runs behind the
// admin gate, so the actor id in the context is the acting admin.
type CourseHandler struct {
	courses store.CourseStore
	logger  *slog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courses store.CourseStore, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CourseHandler")
	}

	return &CourseHandler{
		courses: courses,
		logger:  logger.With(slog.String("component", "course_handler")),
	}
}

// CreateCourse handles POST /course requests
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	adminID, ok := requireActorID(w, r, log)
	if !ok {
		return
	}

	var req CreateCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	course, err := domain.NewCourse(adminID, req.Title, req.Description, req.ImageURL, req.Price)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgCreateCourseFailed, err)
		return
	}

	if err := h.courses.Create(r.Context(), course); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgCreateCourseFailed, err)
		return
	}

	log.Info("course created",
		slog.String("course_id", course.ID.String()),
		slog.String("admin_id", adminID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, CourseMutationResponse{
		Message:  msgCourseCreated,
		CourseID: course.ID.String(),
	})
}

// UpdateCourse handles PUT /course requests. The write is filtered on both
// the course id and the acting admin, so a course owned by someone else is
// never modified. That case still answers 200; it is only logged.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	adminID, ok := requireActorID(w, r, log)
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		shared.RespondWithValidationError(w, r, []shared.FieldViolation{
			{Field: "courseId", Code: "invalid_uuid", Message: "Invalid uuid"},
		})
		return
	}

	matched, err := h.courses.UpdateOwned(r.Context(), courseID, adminID, req.Patch())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUpdateCourseFailed, err)
		return
	}

	if matched == 0 {
		log.Warn("course update matched no course owned by admin",
			slog.String("course_id", courseID.String()),
			slog.String("admin_id", adminID.String()))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CourseMutationResponse{
		Message:  msgCourseUpdated,
		CourseID: req.CourseID,
	})
}

// ListCourses handles GET /course/bulk requests
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	adminID, ok := requireActorID(w, r, log)
	if !ok {
		return
	}

	courses, err := h.courses.ListByCreator(r.Context(), adminID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgListCoursesFailed, err)
		return
	}
	if courses == nil {
		courses = []domain.Course{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CoursesResponse{Courses: courses})
}

package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
	"github.com/phrazzld/course-api/internal/store"
)

const courseColumns = `id, title, description, image_url, price, creator_id`

// PostgresCourseStore implements the store.CourseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*PostgresCourseStore)(nil)

// NewPostgresCourseStore creates a new PostgreSQL implementation of the CourseStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCourseStore(db store.DBTX, logger *slog.Logger) *PostgresCourseStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCourseStore{
		db:     db,
		logger: logger.With(slog.String("component", "course_store")),
	}
}

// Create implements store.CourseStore.Create
// Returns store.ErrInvalidEntity if the creator is not a known admin.
func (s *PostgresCourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `INSERT INTO courses (` + courseColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.db.ExecContext(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.ImageURL,
		course.Price,
		course.CreatorID,
	)
	if err != nil {
		log.Error("failed to create course",
			slog.String("error", redact.Error(err)),
			slog.String("course_id", course.ID.String()),
			slog.String("creator_id", course.CreatorID.String()))
		return MapError(err)
	}

	return nil
}

// UpdateOwned implements store.CourseStore.UpdateOwned
// The single UPDATE filters on both id and creator_id; columns whose patch
// value is NULL keep their current value.
func (s *PostgresCourseStore) UpdateOwned(
	ctx context.Context,
	id, creatorID uuid.UUID,
	patch domain.CoursePatch,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE courses
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			image_url = COALESCE($3, image_url),
			price = COALESCE($4, price)
		WHERE id = $5 AND creator_id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		patch.Title,
		patch.Description,
		patch.ImageURL,
		patch.Price,
		id,
		creatorID,
	)
	if err != nil {
		log.Error("failed to update course",
			slog.String("error", redact.Error(err)),
			slog.String("course_id", id.String()))
		return 0, MapError(err)
	}

	matched, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return matched, nil
}

// ListByCreator implements store.CourseStore.ListByCreator
func (s *PostgresCourseStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE creator_id = $1 ORDER BY id`
	return s.list(ctx, query, creatorID)
}

// ListByIDs implements store.CourseStore.ListByIDs
func (s *PostgresCourseStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error) {
	if len(ids) == 0 {
		return []domain.Course{}, nil
	}
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ANY($1) ORDER BY id`
	return s.list(ctx, query, ids)
}

func (s *PostgresCourseStore) list(ctx context.Context, query string, args ...any) (courses []domain.Course, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query courses", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = MapError(closeErr)
		}
	}()

	courses = []domain.Course{}
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.Price, &c.CreatorID); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", MapError(err))
	}
	return courses, nil
}

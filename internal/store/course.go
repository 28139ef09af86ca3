package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
)

// CourseStore defines the interface for course persistence.
type CourseStore interface {
	// Create saves a new course. Nil descriptive fields are stored as absent.
	Create(ctx context.Context, course *domain.Course) error

	// UpdateOwned applies patch to the course matching both id and creatorID
	// in a single filtered write, and returns how many records matched.
	// A zero count is not an error: the id may not exist or may belong to
	// another admin, and the caller cannot tell which.
	UpdateOwned(ctx context.Context, id, creatorID uuid.UUID, patch domain.CoursePatch) (int64, error)

	// ListByCreator returns every course whose creator is creatorID.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Course, error)

	// ListByIDs returns the courses whose id is in ids, in one query.
	// Unknown ids are ignored; an empty ids slice yields an empty result.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)
}

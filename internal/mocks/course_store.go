package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/store"
)

// MockCourseStore implements store.CourseStore for testing. The default
// implementation keeps courses in insertion order.
type MockCourseStore struct {
	CreateFn        func(ctx context.Context, course *domain.Course) error
	UpdateOwnedFn   func(ctx context.Context, id, creatorID uuid.UUID, patch domain.CoursePatch) (int64, error)
	ListByCreatorFn func(ctx context.Context, creatorID uuid.UUID) ([]domain.Course, error)
	ListByIDsFn     func(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)

	Err error

	mu      sync.Mutex
	courses []domain.Course
}

var _ store.CourseStore = (*MockCourseStore)(nil)

// NewMockCourseStore creates a mock store seeded with courses.
func NewMockCourseStore(courses ...domain.Course) *MockCourseStore {
	return &MockCourseStore{courses: append([]domain.Course(nil), courses...)}
}

// Create implements the CourseStore interface
func (m *MockCourseStore) Create(ctx context.Context, course *domain.Course) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, course)
	}
	if m.Err != nil {
		return m.Err
	}
	if err := course.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses = append(m.courses, *course)
	return nil
}

// UpdateOwned implements the CourseStore interface. Only a course matching
// both id and creatorID is touched.
func (m *MockCourseStore) UpdateOwned(
	ctx context.Context,
	id, creatorID uuid.UUID,
	patch domain.CoursePatch,
) (int64, error) {
	if m.UpdateOwnedFn != nil {
		return m.UpdateOwnedFn(ctx, id, creatorID, patch)
	}
	if m.Err != nil {
		return 0, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var matched int64
	for i := range m.courses {
		if m.courses[i].ID == id && m.courses[i].CreatorID == creatorID {
			patch.Apply(&m.courses[i])
			matched++
		}
	}
	return matched, nil
}

// ListByCreator implements the CourseStore interface
func (m *MockCourseStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Course, error) {
	if m.ListByCreatorFn != nil {
		return m.ListByCreatorFn(ctx, creatorID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	courses := []domain.Course{}
	for _, c := range m.courses {
		if c.CreatorID == creatorID {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

// ListByIDs implements the CourseStore interface
func (m *MockCourseStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, ids)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	courses := []domain.Course{}
	for _, c := range m.courses {
		if _, ok := wanted[c.ID]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

// Get returns a copy of the stored course with the given id.
func (m *MockCourseStore) Get(id uuid.UUID) (domain.Course, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.courses {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Course{}, false
}

package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/redact"
	"github.com/phrazzld/course-api/internal/store"
)

// MongoCourseStore implements store.CourseStore on the courses collection.
type MongoCourseStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure MongoCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*MongoCourseStore)(nil)

// NewMongoCourseStore creates a course store in db.
func NewMongoCourseStore(db *mongo.Database, logger *slog.Logger) *MongoCourseStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoCourseStore{
		coll:   db.Collection(CourseCollection),
		logger: logger.With(slog.String("component", "course_store")),
	}
}

// Create implements store.CourseStore.Create
func (s *MongoCourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if _, err := s.coll.InsertOne(ctx, newCourseDocument(course)); err != nil {
		log.Error("failed to create course",
			slog.String("error", redact.Error(err)),
			slog.String("course_id", course.ID.String()))
		return MapError(err)
	}
	return nil
}

// UpdateOwned implements store.CourseStore.UpdateOwned
// The filter carries both _id and creatorId, so the write and the
// ownership check are one operation.
func (s *MongoCourseStore) UpdateOwned(
	ctx context.Context,
	id, creatorID uuid.UUID,
	patch domain.CoursePatch,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	filter := bson.D{
		{Key: "_id", Value: id.String()},
		{Key: "creatorId", Value: creatorID.String()},
	}

	// An empty $set is rejected by the server; count the match instead.
	if patch.IsEmpty() {
		matched, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			log.Error("failed to match course", slog.String("error", redact.Error(err)))
			return 0, MapError(err)
		}
		return matched, nil
	}

	result, err := s.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: patchSet(patch)}})
	if err != nil {
		log.Error("failed to update course",
			slog.String("error", redact.Error(err)),
			slog.String("course_id", id.String()))
		return 0, MapError(err)
	}
	return result.MatchedCount, nil
}

// ListByCreator implements store.CourseStore.ListByCreator
func (s *MongoCourseStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Course, error) {
	return s.find(ctx, bson.D{{Key: "creatorId", Value: creatorID.String()}})
}

// ListByIDs implements store.CourseStore.ListByIDs
func (s *MongoCourseStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error) {
	if len(ids) == 0 {
		return []domain.Course{}, nil
	}
	return s.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: idStrings(ids)}}}})
}

func (s *MongoCourseStore) find(ctx context.Context, filter bson.D) ([]domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		log.Error("failed to query courses", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}

	var docs []courseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode courses: %w", MapError(err))
	}

	courses := make([]domain.Course, 0, len(docs))
	for _, doc := range docs {
		course, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

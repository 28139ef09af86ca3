package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/mocks"
	"github.com/phrazzld/course-api/internal/store"
)

func seedUser(t *testing.T, users *mocks.MockIdentityStore, email string) *domain.Identity {
	t.Helper()
	user, err := domain.NewIdentity(email, "hashed:password123", "Grace", "Hopper")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func seedCourse(t *testing.T) domain.Course {
	t.Helper()
	title := "Compilers"
	course, err := domain.NewCourse(uuid.New(), &title, nil, nil, nil)
	require.NoError(t, err)
	return *course
}

func TestGrant(t *testing.T) {
	t.Parallel()

	t.Run("records purchase", func(t *testing.T) {
		users := mocks.NewMockIdentityStore(domain.ActorUser)
		user := seedUser(t, users, "grace@example.com")
		course := seedCourse(t)
		purchases := mocks.NewMockPurchaseStore()

		purchase, err := grant(context.Background(), users, mocks.NewMockCourseStore(course), purchases,
			"grace@example.com", course.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, purchase.UserID)
		assert.Equal(t, course.ID, purchase.CourseID)

		owned, err := purchases.ListByUser(context.Background(), user.ID)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, purchase.ID, owned[0].ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		course := seedCourse(t)

		_, err := grant(context.Background(), mocks.NewMockIdentityStore(domain.ActorUser),
			mocks.NewMockCourseStore(course), mocks.NewMockPurchaseStore(), "nobody@example.com", course.ID)
		assert.True(t, errors.Is(err, store.ErrIdentityNotFound))
	})

	t.Run("unknown course", func(t *testing.T) {
		users := mocks.NewMockIdentityStore(domain.ActorUser)
		seedUser(t, users, "grace@example.com")
		purchases := mocks.NewMockPurchaseStore()

		_, err := grant(context.Background(), users, mocks.NewMockCourseStore(), purchases,
			"grace@example.com", uuid.New())
		assert.True(t, errors.Is(err, ErrCourseNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		users := mocks.NewMockIdentityStore(domain.ActorUser)
		seedUser(t, users, "grace@example.com")
		course := seedCourse(t)
		boom := errors.New("write failed")

		_, err := grant(context.Background(), users, mocks.NewMockCourseStore(course),
			&mocks.MockPurchaseStore{Err: boom}, "grace@example.com", course.ID)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRunRejectsBadArguments(t *testing.T) {
	t.Parallel()

	assert.Error(t, run(context.Background(), "", ""))
	assert.ErrorIs(t, run(context.Background(), "grace@example.com", "not-a-uuid"), domain.ErrInvalidID)
}

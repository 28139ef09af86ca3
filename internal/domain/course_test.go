package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNewCourse(t *testing.T) {
	creator := uuid.New()

	course, err := NewCourse(creator, strPtr("Go"), nil, nil, floatPtr(49.5))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, course.ID)
	assert.Equal(t, creator, course.CreatorID)
	assert.Equal(t, "Go", *course.Title)
	assert.Nil(t, course.Description, "absent fields stay absent")

	_, err = NewCourse(uuid.Nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCreatorID)
}

func TestCoursePatch(t *testing.T) {
	course := Course{
		ID:          uuid.New(),
		Title:       strPtr("Old"),
		Description: strPtr("keep me"),
		Price:       floatPtr(10),
		CreatorID:   uuid.New(),
	}

	assert.True(t, CoursePatch{}.IsEmpty())

	patch := CoursePatch{Title: strPtr("New"), Price: floatPtr(20)}
	assert.False(t, patch.IsEmpty())
	patch.Apply(&course)

	assert.Equal(t, "New", *course.Title)
	assert.Equal(t, "keep me", *course.Description)
	assert.Nil(t, course.ImageURL)
	assert.Equal(t, 20.0, *course.Price)
}

func TestPurchase(t *testing.T) {
	userID, courseA, courseB := uuid.New(), uuid.New(), uuid.New()

	p1, err := NewPurchase(userID, courseA)
	require.NoError(t, err)
	p2, err := NewPurchase(userID, courseB)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{courseA, courseB}, CourseIDs([]Purchase{*p1, *p2}))
	assert.Empty(t, CourseIDs(nil))

	_, err = NewPurchase(uuid.Nil, courseA)
	assert.ErrorIs(t, err, ErrEmptyPurchaseUserID)
	_, err = NewPurchase(userID, uuid.Nil)
	assert.ErrorIs(t, err, ErrEmptyPurchaseCourseID)
}

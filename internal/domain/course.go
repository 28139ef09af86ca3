package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Course validation errors
var (
	ErrEmptyCourseID  = errors.New("course ID cannot be empty")
	ErrEmptyCreatorID = errors.New("course creator ID cannot be empty")
)

// Course is a listing created by an admin. Descriptive fields are optional:
// a field absent from the create request stays absent (nil) in the store.
type Course struct {
	ID          uuid.UUID `json:"_id"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	CreatorID   uuid.UUID `json:"creatorId"`
}

// NewCourse creates a Course owned by creatorID with a fresh UUID.
func NewCourse(creatorID uuid.UUID, title, description, imageURL *string, price *float64) (*Course, error) {
	course := &Course{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Price:       price,
		CreatorID:   creatorID,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks the identifiers; descriptive fields carry no constraints.
func (c *Course) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCourseID
	}
	if c.CreatorID == uuid.Nil {
		return ErrEmptyCreatorID
	}
	return nil
}

// CoursePatch is a partial update. Nil fields are left untouched.
type CoursePatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Price       *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p CoursePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.ImageURL == nil && p.Price == nil
}

// Apply copies the non-nil fields of p onto c.
func (p CoursePatch) Apply(c *Course) {
	if p.Title != nil {
		c.Title = p.Title
	}
	if p.Description != nil {
		c.Description = p.Description
	}
	if p.ImageURL != nil {
		c.ImageURL = p.ImageURL
	}
	if p.Price != nil {
		c.Price = p.Price
	}
}

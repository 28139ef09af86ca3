package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Purchase validation errors
var (
	ErrEmptyPurchaseID       = errors.New("purchase ID cannot be empty")
	ErrEmptyPurchaseUserID   = errors.New("purchase user ID cannot be empty")
	ErrEmptyPurchaseCourseID = errors.New("purchase course ID cannot be empty")
)

// Purchase links a user to a course they bought. The API only reads
// purchases; they are written by whatever handles checkout.
type Purchase struct {
	ID       uuid.UUID `json:"_id"`
	UserID   uuid.UUID `json:"userId"`
	CourseID uuid.UUID `json:"courseId"`
}

// NewPurchase creates a Purchase with a fresh UUID.
func NewPurchase(userID, courseID uuid.UUID) (*Purchase, error) {
	p := &Purchase{
		ID:       uuid.New(),
		UserID:   userID,
		CourseID: courseID,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that all three identifiers are set.
func (p *Purchase) Validate() error {
	switch {
	case p.ID == uuid.Nil:
		return ErrEmptyPurchaseID
	case p.UserID == uuid.Nil:
		return ErrEmptyPurchaseUserID
	case p.CourseID == uuid.Nil:
		return ErrEmptyPurchaseCourseID
	}
	return nil
}

// CourseIDs returns the course ids referenced by purchases, in order.
// Duplicates are kept; stores match them with a set-membership filter.
func CourseIDs(purchases []Purchase) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(purchases))
	for _, p := range purchases {
		ids = append(ids, p.CourseID)
	}
	return ids
}

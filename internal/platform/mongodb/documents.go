package mongodb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/phrazzld/course-api/internal/domain"
)

type identityDocument struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	FirstName string    `bson:"firstName"`
	LastName  string    `bson:"lastName"`
	CreatedAt time.Time `bson:"createdAt"`
}

func newIdentityDocument(i *domain.Identity) identityDocument {
	return identityDocument{
		ID:        i.ID.String(),
		Email:     i.Email,
		Password:  i.HashedPassword,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		CreatedAt: i.CreatedAt,
	}
}

func (d identityDocument) toDomain() (*domain.Identity, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{
		ID:             id,
		Email:          d.Email,
		HashedPassword: d.Password,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		CreatedAt:      d.CreatedAt,
	}, nil
}

// courseDocument omits nil fields so an absent value is absent in the
// stored document, not null.
type courseDocument struct {
	ID          string   `bson:"_id"`
	Title       *string  `bson:"title,omitempty"`
	Description *string  `bson:"description,omitempty"`
	ImageURL    *string  `bson:"imageUrl,omitempty"`
	Price       *float64 `bson:"price,omitempty"`
	CreatorID   string   `bson:"creatorId"`
}

func newCourseDocument(c *domain.Course) courseDocument {
	return courseDocument{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Price:       c.Price,
		CreatorID:   c.CreatorID.String(),
	}
}

func (d courseDocument) toDomain() (domain.Course, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return domain.Course{}, err
	}
	creatorID, err := parseID(d.CreatorID)
	if err != nil {
		return domain.Course{}, err
	}
	return domain.Course{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Price:       d.Price,
		CreatorID:   creatorID,
	}, nil
}

type purchaseDocument struct {
	ID       string `bson:"_id"`
	UserID   string `bson:"userId"`
	CourseID string `bson:"courseId"`
}

func newPurchaseDocument(p *domain.Purchase) purchaseDocument {
	return purchaseDocument{
		ID:       p.ID.String(),
		UserID:   p.UserID.String(),
		CourseID: p.CourseID.String(),
	}
}

func (d purchaseDocument) toDomain() (domain.Purchase, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return domain.Purchase{}, err
	}
	userID, err := parseID(d.UserID)
	if err != nil {
		return domain.Purchase{}, err
	}
	courseID, err := parseID(d.CourseID)
	if err != nil {
		return domain.Purchase{}, err
	}
	return domain.Purchase{ID: id, UserID: userID, CourseID: courseID}, nil
}

// patchSet builds the $set document for a course patch. Nil fields are
// left out so they keep their stored value.
func patchSet(p domain.CoursePatch) bson.D {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.ImageURL != nil {
		set = append(set, bson.E{Key: "imageUrl", Value: *p.ImageURL})
	}
	if p.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *p.Price})
	}
	return set
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, s)
	}
	return id, nil
}

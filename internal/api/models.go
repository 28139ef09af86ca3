package api

import (
	"github.com/phrazzld/course-api/internal/domain"
)

// SignupRequest defines the payload for both signup endpoints.
type SignupRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

// signinRequest is implemented by the per-actor signin payloads.
type signinRequest interface {
	credentials() (email, password string)
}

// AdminSigninRequest defines the payload for the admin signin endpoint.
type AdminSigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *AdminSigninRequest) credentials() (string, string) { return r.Email, r.Password }

// UserSigninRequest defines the payload for the user signin endpoint.
// Users are only required to send a non-empty password.
type UserSigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

func (r *UserSigninRequest) credentials() (string, string) { return r.Email, r.Password }

// newSigninRequest returns an empty signin payload with the rules of actor.
func newSigninRequest(actor domain.ActorType) signinRequest {
	if actor == domain.ActorAdmin {
		return &AdminSigninRequest{}
	}
	return &UserSigninRequest{}
}

// TokenResponse is the successful signin response.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateCourseRequest defines the payload for POST /course. Every field is
// optional; absent fields stay absent on the stored course.
type CreateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Price       *float64 `json:"price"`
}

// UpdateCourseRequest defines the payload for PUT /course. Absent fields are
// left unchanged.
type UpdateCourseRequest struct {
	CourseID    string   `json:"courseId"    validate:"required,uuid"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Price       *float64 `json:"price"`
}

// Patch returns the partial update carried by the request.
func (r UpdateCourseRequest) Patch() domain.CoursePatch {
	return domain.CoursePatch{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Price:       r.Price,
	}
}

// CourseMutationResponse acknowledges a course create or update.
type CourseMutationResponse struct {
	Message  string `json:"message"`
	CourseID string `json:"courseId"`
}

// CoursesResponse lists an admin's courses.
type CoursesResponse struct {
	Courses []domain.Course `json:"courses"`
}

// PurchasesResponse lists a user's purchases and the courses they refer to.
type PurchasesResponse struct {
	Purchases   []domain.Purchase `json:"purchases"`
	CoursesData []domain.Course   `json:"coursesData"`
}

package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/course-api/internal/api/shared"
)

// validate is shared by every handler; validator caches struct metadata
// and is safe for concurrent use.
var validate = newValidator()

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// fieldViolations converts a validator error into per-field violations.
// Anything that is not a validator.ValidationErrors becomes a single
// violation against the whole body.
func fieldViolations(err error) []shared.FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []shared.FieldViolation{{Field: "body", Code: "invalid", Message: "Invalid payload"}}
	}

	violations := make([]shared.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, shared.FieldViolation{
			Field:   fe.Field(),
			Code:    violationCode(fe.Tag()),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationCode(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "email":
		return "invalid_email"
	case "uuid":
		return "invalid_uuid"
	case "min":
		return "too_small"
	case "max":
		return "too_big"
	default:
		return "invalid"
	}
}

// violationMessage maps validation tags to user-friendly messages.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "uuid":
		return "Invalid uuid"
	case "min":
		return fmt.Sprintf("Must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("Must contain at most %s character(s)", fe.Param())
	default:
		return "Invalid value"
	}
}

package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phrazzld/course-api/internal/store"
)

// MapError maps a driver error to the store's sentinel errors, keeping the
// original error in the chain.
func MapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	default:
		return err
	}
}

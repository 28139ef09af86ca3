// Command grant-purchase records that a user owns a course. Checkout
// happens outside the API, so operators use this tool to back-fill or
// correct purchases against the configured backend.
//
// Usage:
//
//	grant-purchase -email user@example.com -course 5b0c...-uuid
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/phrazzld/course-api/internal/config"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/backend"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/store"
)

// ErrCourseNotFound is returned when the course to grant does not exist.
var ErrCourseNotFound = errors.New("course not found")

func main() {
	email := flag.String("email", "", "email of the user receiving the course")
	course := flag.String("course", "", "id of the course to grant")
	flag.Parse()

	if err := run(context.Background(), *email, *course); err != nil {
		slog.Error("grant-purchase failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, email, course string) error {
	if email == "" || course == "" {
		flag.Usage()
		return errors.New("both -email and -course are required")
	}
	courseID, err := uuid.Parse(course)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, course)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	stores, err := backend.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	purchase, err := grant(ctx, stores.Users, stores.Courses, stores.Purchases, email, courseID)
	if err != nil {
		return err
	}

	log.Info("Purchase recorded",
		"purchase_id", purchase.ID,
		"user_id", purchase.UserID,
		"course_id", purchase.CourseID)
	fmt.Println(purchase.ID)
	return nil
}

// grant resolves the user by email, checks the course exists and stores a
// purchase binding the two.
func grant(
	ctx context.Context,
	users store.IdentityStore,
	courses store.CourseStore,
	purchases store.PurchaseStore,
	email string,
	courseID uuid.UUID,
) (*domain.Purchase, error) {
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	found, err := courses.ListByIDs(ctx, []uuid.UUID{courseID})
	if err != nil {
		return nil, fmt.Errorf("look up course: %w", err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}

	purchase, err := domain.NewPurchase(user.ID, courseID)
	if err != nil {
		return nil, err
	}
	if err := purchases.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}
	return purchase, nil
}

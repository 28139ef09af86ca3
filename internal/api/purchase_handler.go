package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/course-api/internal/api/shared"
	"github.com/phrazzld/course-api/internal/domain"
	"github.com/phrazzld/course-api/internal/platform/logger"
	"github.com/phrazzld/course-api/internal/store"
)

// PurchaseHandler serves the user purchase routes.
type PurchaseHandler struct {
	purchases store.PurchaseStore
	courses   store.CourseStore
	logger    *slog.Logger
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(
	purchases store.PurchaseStore,
	courses store.CourseStore,
	logger *slog.Logger,
) *PurchaseHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PurchaseHandler")
	}

	return &PurchaseHandler{
		purchases: purchases,
		courses:   courses,
		logger:    logger.With(slog.String("component", "purchase_handler")),
	}
}

// ListPurchases handles GET /purchases requests. It returns the user's
// purchases and, from a single lookup, the courses they reference.
func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireActorID(w, r, log)
	if !ok {
		return
	}

	purchases, err := h.purchases.ListByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgPurchasesFailed,
			fmt.Errorf("list purchases: %w", err))
		return
	}
	if purchases == nil {
		purchases = []domain.Purchase{}
	}

	courses := []domain.Course{}
	if len(purchases) > 0 {
		courses, err = h.courses.ListByIDs(r.Context(), domain.CourseIDs(purchases))
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgPurchasesFailed,
				fmt.Errorf("list purchased courses: %w", err))
			return
		}
		if courses == nil {
			courses = []domain.Course{}
		}
	}

	log.Debug("purchases listed",
		slog.String("user_id", userID.String()),
		slog.Int("purchases", len(purchases)),
		slog.Int("courses", len(courses)))

	shared.RespondWithJSON(w, r, http.StatusOK, PurchasesResponse{
		Purchases:   purchases,
		CoursesData: courses,
	})
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/phrazzld/course-api/internal/api"
	apimiddleware "github.com/phrazzld/course-api/internal/api/middleware"
)

// setupRouter creates and configures the application router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware(app.logger))

	courses := api.NewCourseHandler(app.stores.Courses, app.logger)
	purchases := api.NewPurchaseHandler(app.stores.Purchases, app.stores.Courses, app.logger)
	admins := api.NewAccountHandler(app.stores.Admins, app.hasher, app.adminTokens, app.logger)
	users := api.NewAccountHandler(app.stores.Users, app.hasher, app.userTokens, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Post("/signup", admins.Signup)
			r.Post("/signin", admins.Signin)

			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.NewAuthGate(app.adminTokens).Authenticate)
				r.Post("/course", courses.CreateCourse)
				r.Put("/course", courses.UpdateCourse)
				r.Get("/course/bulk", courses.ListCourses)
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", users.Signup)
			r.Post("/signin", users.Signin)

			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.NewAuthGate(app.userTokens).Authenticate)
				r.Get("/purchases", purchases.ListPurchases)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return app.withCORS(r)
}

// withCORS wraps h with a CORS policy for the configured origins. With no
// origins configured the handler is returned unchanged and browsers fall
// back to same-origin rules.
func (app *application) withCORS(h http.Handler) http.Handler {
	origins := app.config.Server.CORSAllowedOrigins
	if len(origins) == 0 {
		return h
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", apimiddleware.LegacyTokenHeader},
		MaxAge:         300,
	}).Handler(h)
}

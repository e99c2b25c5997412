package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api"
	apiMiddleware "github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/middleware"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Reads are public; anything that mutates state
// requires a valid token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.keyDirectory, app.jwtService, app.logger)
	employeeHandler := api.NewEmployeeHandler(app.employeeStore, app.logger)
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints
		r.Post("/auth/login", authHandler.Login)
		r.With(authMiddleware.Authenticate).Get("/auth/verify", authHandler.Verify)

		r.Route("/employees", func(r chi.Router) {
			// Public reads
			r.Get("/", employeeHandler.List)
			r.Get("/with-tasks", employeeHandler.ListWithTasks)
			r.Get("/with-task-count", employeeHandler.ListWithTaskCount)
			r.Get("/{id}", employeeHandler.Get)

			// Protected writes
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", employeeHandler.Create)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			// Public reads
			r.With(authMiddleware.OptionalAuthenticate).Get("/", taskHandler.List)
			r.Get("/stats", taskHandler.Stats)
			r.Get("/{id}", taskHandler.Get)

			// Protected writes
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", taskHandler.Create)
				r.Put("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
			})
		})
	})

	// Root endpoint describing the API surface
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, api.IndexResponse{
			Message: "Employee Task Tracker API",
			Version: "1.0.0",
			Endpoints: map[string]string{
				"auth":      "/api/auth",
				"employees": "/api/employees",
				"tasks":     "/api/tasks",
				"health":    "/health",
			},
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

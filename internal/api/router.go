package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/isdelr/venture-manager-be/internal/api/handlers"
	"github.com/isdelr/venture-manager-be/internal/auth"
	"github.com/isdelr/venture-manager-be/internal/services"
)

// NewRouter creates and configures a new Chi router. Routes live at the root
// (no version prefix) to keep the external interface stable for existing
// clients.
func NewRouter(
	tokens *auth.Manager,
	userService services.UserServiceProvider,
	ventureService services.VentureServiceProvider,
	imageService services.ImageServiceProvider,
	webhookService services.WebhookServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	ventureHandler := handlers.NewVentureHandler(ventureService)
	imageHandler := handlers.NewImageHandler(imageService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)

	// Public routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/get-images/{idSpace}", imageHandler.List)

	// Routes carrying the token in the request body
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Post("/search-ventures", ventureHandler.Search)
		r.Post("/search-updates", webhookHandler.LastUpdate)
		r.Post("/update-baseIA", webhookHandler.UpdateBase)
		r.Post("/manage-ventures", ventureHandler.Manage)
		r.Delete("/delete-venture", ventureHandler.Delete)
		r.Post("/upload-image", imageHandler.Upload)
		r.Post("/update-image", imageHandler.Update)
		r.Delete("/delete-image", imageHandler.Delete)
	})

	return r
}

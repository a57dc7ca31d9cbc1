package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventscout/internal/delivery/http/controllers"
	"eventscout/internal/delivery/http/middleware"
	"eventscout/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	interactionController *controllers.InteractionController,
	userController *controllers.UserController,
	notificationController *controllers.NotificationController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Catalog
	mux.HandleFunc("GET /events", eventController.Browse)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("GET /events/{eventID}/reviews", eventController.ListReviews)
	mux.HandleFunc("POST /events/{eventID}/reviews", auth(eventController.CreateReview))
	mux.HandleFunc("GET /events/{eventID}/status", auth(eventController.Status))

	// Interactions
	mux.HandleFunc("POST /events/{eventID}/favorite", auth(interactionController.ToggleFavorite))
	mux.HandleFunc("POST /events/{eventID}/reminder", auth(interactionController.ToggleReminder))
	mux.HandleFunc("POST /events/{eventID}/attendance", auth(interactionController.RecordAttendance))
	mux.HandleFunc("GET /me/favorites", auth(interactionController.ListFavorites))
	mux.HandleFunc("GET /me/attended", auth(interactionController.ListAttended))
	mux.HandleFunc("GET /me/reminders", auth(interactionController.ListReminders))

	// Profile
	mux.HandleFunc("GET /me/profile", auth(userController.GetProfile))
	mux.HandleFunc("PUT /me/profile", auth(userController.UpdateProfile))

	// Notifications
	mux.HandleFunc("GET /me/notifications", auth(notificationController.List))
	mux.HandleFunc("DELETE /me/notifications/{notificationID}", auth(notificationController.Delete))
	mux.HandleFunc("POST /me/notifications/{notificationID}/read", auth(notificationController.MarkRead))
	mux.HandleFunc("GET /me/notifications/settings", auth(notificationController.GetSettings))
	mux.HandleFunc("PUT /me/notifications/settings", auth(notificationController.UpdateSettings))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

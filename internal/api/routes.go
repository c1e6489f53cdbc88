package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/AGILEDROP/working-plusplus/internal/handler"
	"github.com/AGILEDROP/working-plusplus/internal/middleware"
	"github.com/AGILEDROP/working-plusplus/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Karma
	r.HandleFunc("/karma/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/karma/users/{userId}/profile", handler.GetUserProfile).Methods(http.MethodGet)
	r.HandleFunc("/karma/users/{userId}/ledger", handler.GetUserLedger).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/karma/events", handler.CreateScoreEvent).Methods(http.MethodPost)

	// Users
	authenticatedRoutes.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Channels
	r.HandleFunc("/channels", handler.GetChannels).Methods(http.MethodGet)

	// Admin
	authenticatedRoutes.HandleFunc("/admin/cache/invalidate", handler.InvalidateNameCache).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}

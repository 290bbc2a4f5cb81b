package mbiri

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	model "github.com/loktioncode/mbiri-api/internal/models"
	service "github.com/loktioncode/mbiri-api/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	router    *mux.Router
	users     *service.UserService
	videos    *service.VideoService
	points    *service.PointsService
	analytics *service.AnalyticsService
	logger    *zap.Logger
}

func NewHandler(users *service.UserService, videos *service.VideoService, points *service.PointsService, analytics *service.AnalyticsService, logger *zap.Logger) *Handler {
	router := mux.NewRouter()
	handler := &Handler{router, users, videos, points, analytics, logger}

	router.Use(MiddlewareLog())
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/api/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/auth/register", handler.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/videos/discover", handler.DiscoverHandler).Methods(http.MethodGet)
	// ids are constrained to ObjectID hex so literal segments like
	// "my-videos" never match an {id} route
	router.HandleFunc("/api/videos/{id:[0-9a-fA-F]{24}}", handler.GetVideoHandler).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	secured.Use(MiddlewareAuth(users))
	secured.HandleFunc("/api/users/me", handler.MeHandler).Methods(http.MethodGet)
	secured.HandleFunc("/api/users/me", handler.UpdateMeHandler).Methods(http.MethodPut)
	secured.HandleFunc("/api/users/me/points", handler.MyPointsHandler).Methods(http.MethodGet)
	secured.HandleFunc("/api/users/transfer-points", handler.TransferPointsHandler).Methods(http.MethodPost)
	secured.HandleFunc("/api/users/{id:[0-9a-fA-F]{24}}", handler.GetUserHandler).Methods(http.MethodGet)
	secured.HandleFunc("/api/videos", handler.AddVideoHandler).Methods(http.MethodPost)
	secured.HandleFunc("/api/videos/my-videos", handler.MyVideosHandler).Methods(http.MethodGet)
	secured.HandleFunc("/api/videos/{id:[0-9a-fA-F]{24}}", handler.UpdateVideoHandler).Methods(http.MethodPut)
	secured.HandleFunc("/api/videos/{id:[0-9a-fA-F]{24}}", handler.DeleteVideoHandler).Methods(http.MethodDelete)
	secured.HandleFunc("/api/videos/{id:[0-9a-fA-F]{24}}/watch", handler.WatchHandler).Methods(http.MethodPost)
	secured.HandleFunc("/api/analytics/videos/{id:[0-9a-fA-F]{24}}", handler.VideoAnalyticsHandler).Methods(http.MethodGet)
	secured.HandleFunc("/api/analytics/my-videos", handler.CreatorAnalyticsHandler).Methods(http.MethodGet)
	secured.HandleFunc("/api/analytics/trending", handler.TrendingHandler).Methods(http.MethodGet)

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func corsOrigins() []string {
	env := os.Getenv("MBIRI_CORS_ORIGINS")
	if env == "" {
		return []string{"http://localhost:3000"}
	}
	origins := strings.Split(env, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func (h *Handler) HealthHandler(w http.ResponseWriter, req *http.Request) {
	h.JSON(w, map[string]any{"status": "healthy", "message": "API is running"})
}

// JSON writes v with status 200.
func (h *Handler) JSON(w http.ResponseWriter, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", "JSON", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

// Error maps sentinel errors onto HTTP status codes.
func (h *Handler) Error(w http.ResponseWriter, handler string, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, model.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, model.ErrInvalidArgument),
		errors.Is(err, model.ErrAlreadyExists),
		errors.Is(err, model.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Log("Service call", handler, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) Log(msg string, handler string, err error) {
	h.logger.Error(msg,
		zap.String("handler", handler),
		zap.Error(err),
	)
}

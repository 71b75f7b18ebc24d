package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
)

// Handlers - все обработчики сервиса, собранные в app.
type Handlers struct {
	Properties      *PropertiesHandler
	Recommendations *RecommendationsHandler
	Favorites       *FavoritesHandler
	Viewings        *ViewingsHandler
	Leads           *LeadsHandler
	SavedSearches   *SavedSearchesHandler
	Payments        *PaymentsHandler
	Analytics       *AnalyticsHandler
	Internal        *InternalHandler
}

// ServerConfig - настройки HTTP-сервера.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	CronSecret     string
}

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(cfg ServerConfig, handlers Handlers, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID", "X-User-Role", "X-Trace-ID"},
		AllowCredentials: true,
	}))

	// Публичный каталог
	r.Route("/api/v1/properties", func(r chi.Router) {
		r.Get("/", handlers.Properties.FindProperties)
		r.Get("/search", handlers.Properties.SearchProperties)
		r.Get("/featured", handlers.Properties.GetFeatured)
		r.Get("/{propertyID}", handlers.Properties.GetProperty)
		r.Get("/{propertyID}/similar", handlers.Recommendations.GetSimilarProperties)

		// Управление своими объявлениями - только для авторизованных
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Post("/", handlers.Properties.CreateProperty)
			r.Patch("/{propertyID}", handlers.Properties.UpdateProperty)
			r.Delete("/{propertyID}", handlers.Properties.DeleteProperty)
			r.Get("/{propertyID}/viewings", handlers.Viewings.GetPropertyViewings)
		})
	})

	// Персональные рекомендации
	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/", handlers.Recommendations.GetRecommendations)
	})

	// Избранное
	r.Route("/api/v1/favorites", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/", handlers.Favorites.GetUserFavorites)
		r.Get("/ids", handlers.Favorites.GetUserFavoriteIDs)
		r.Post("/", handlers.Favorites.AddToFavorites)
		r.Delete("/{propertyID}", handlers.Favorites.RemoveFromFavorites)
	})

	// Записи на просмотр
	r.Route("/api/v1/viewings", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/", handlers.Viewings.GetUserViewings)
		r.Post("/", handlers.Viewings.ScheduleViewing)
		r.Patch("/{viewingID}", handlers.Viewings.UpdateViewingStatus)
	})

	// Заявки: создание доступно и анонимно
	r.Route("/api/v1/leads", func(r chi.Router) {
		r.With(OptionalAuthMiddleware).Post("/", handlers.Leads.CreateLead)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Get("/", handlers.Leads.GetLeads)
			r.Patch("/{leadID}", handlers.Leads.UpdateLeadStatus)
		})
	})

	// Сохраненные поиски
	r.Route("/api/v1/saved-searches", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/", handlers.SavedSearches.GetSavedSearches)
		r.Post("/", handlers.SavedSearches.SaveSearch)
		r.Delete("/{searchID}", handlers.SavedSearches.DeleteSavedSearch)
	})

	// Платежи за премиум-размещение
	r.Route("/api/v1/payments", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/", handlers.Payments.GetUserPayments)
		r.Post("/orders", handlers.Payments.CreatePaymentOrder)
		r.Post("/verify", handlers.Payments.VerifyPayment)
	})

	// Аналитика владельца
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/dashboard", handlers.Analytics.GetDashboardStats)
		r.Get("/properties/{propertyID}", handlers.Analytics.GetPropertyAnalytics)
	})

	// Модерация - только для администраторов
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Use(AdminMiddleware)
		r.Post("/properties/{propertyID}/moderate", handlers.Properties.ModerateProperty)
	})

	// Внутренние эндпоинты планировщика
	r.Route("/internal/v1/cron", func(r chi.Router) {
		r.Use(CronAuthMiddleware(cfg.CronSecret))
		r.Post("/check-alerts", handlers.Internal.CheckSearchAlerts)
		r.Post("/expire-featured", handlers.Internal.ExpireFeatured)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}

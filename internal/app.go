package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "github.com/AnandGandhi03/realtor-india-platform/internal/adapters/logger"
	postgres_adapter "github.com/AnandGandhi03/realtor-india-platform/internal/adapters/postgres"
	rabbitmq_adapter "github.com/AnandGandhi03/realtor-india-platform/internal/adapters/rabbitmq"
	"github.com/AnandGandhi03/realtor-india-platform/internal/adapters/rest"
	"github.com/AnandGandhi03/realtor-india-platform/internal/configs"
	"github.com/AnandGandhi03/realtor-india-platform/internal/constants"
	"github.com/AnandGandhi03/realtor-india-platform/internal/contracts"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/port"
	"github.com/AnandGandhi03/realtor-india-platform/internal/core/usecase"
	"github.com/AnandGandhi03/realtor-india-platform/pkg/fluentlogger"
	"github.com/AnandGandhi03/realtor-india-platform/pkg/postgres"
	"github.com/AnandGandhi03/realtor-india-platform/pkg/rabbitmq/rabbitmq_common"
	"github.com/AnandGandhi03/realtor-india-platform/pkg/rabbitmq/rabbitmq_producer"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	rabbitManager *rabbitmq_common.ConnectionManager
	publisher     *rabbitmq_producer.Publisher

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL:     appConfig.Database.URL,
		MaxConns:        appConfig.Database.MaxConns,
		MaxConnLifetime: appConfig.Database.MaxConnLifetime,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	rabbitLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))
	rabbitManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, rabbitLogger)
	if err != nil {
		appLogger.Error("Failed to connect to RabbitMQ", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             constants.NotificationsExchange,
		ExchangeType:             constants.NotificationsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitLogger,
	}, rabbitManager)
	if err != nil {
		appLogger.Error("Failed to create RabbitMQ publisher", err, nil)
		_ = rabbitManager.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to create RabbitMQ publisher: %w", err)
	}

	// --- 4. АДАПТЕРЫ ---
	catalogRepo, err := postgres_adapter.NewPropertyCatalogRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create property catalog repository: %w", err)
	}
	storageRepo, err := postgres_adapter.NewPropertyStorageRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create property storage repository: %w", err)
	}
	activityRepo, err := postgres_adapter.NewUserActivityRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create user activity repository: %w", err)
	}
	favoritesRepo, err := postgres_adapter.NewPostgresFavoritesRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create favorites repository: %w", err)
	}
	viewingsRepo, err := postgres_adapter.NewPostgresViewingsRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create viewings repository: %w", err)
	}
	leadsRepo, err := postgres_adapter.NewPostgresLeadsRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create leads repository: %w", err)
	}
	savedSearchRepo, err := postgres_adapter.NewPostgresSavedSearchRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create saved search repository: %w", err)
	}
	paymentsRepo, err := postgres_adapter.NewPostgresPaymentsRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create payments repository: %w", err)
	}
	statsRepo, err := postgres_adapter.NewOwnerStatsRepository(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner stats repository: %w", err)
	}

	notificationsAdapter, err := rabbitmq_adapter.NewRabbitMQNotificationsAdapter(publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifications adapter: %w", err)
	}

	criteriaValidator := contracts.NewCriteriaValidator()
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 5. USE CASES (ядро бизнес-логики) ---
	findPropertiesUC := usecase.NewFindPropertiesUseCase(catalogRepo)
	searchPropertiesUC := usecase.NewSearchPropertiesUseCase(catalogRepo)
	propertyDetailsUC := usecase.NewGetPropertyDetailsUseCase(catalogRepo)
	featuredUC := usecase.NewGetFeaturedPropertiesUseCase(catalogRepo)
	createPropertyUC := usecase.NewCreatePropertyUseCase(storageRepo)
	updatePropertyUC := usecase.NewUpdatePropertyUseCase(storageRepo)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(storageRepo)
	moderatePropertyUC := usecase.NewModeratePropertyUseCase(catalogRepo, storageRepo)

	recommendationsUC := usecase.NewGetRecommendationsUseCase(activityRepo, catalogRepo)
	similarPropertiesUC := usecase.NewGetSimilarPropertiesUseCase(catalogRepo)

	addToFavoritesUC := usecase.NewAddToFavoritesUseCase(favoritesRepo)
	removeFromFavoritesUC := usecase.NewRemoveFromFavoritesUseCase(favoritesRepo)
	getUserFavoritesUC := usecase.NewGetUserFavoritesUseCase(favoritesRepo)
	getUserFavoriteIDsUC := usecase.NewGetUserFavoriteIDsUseCase(favoritesRepo)

	scheduleViewingUC := usecase.NewScheduleViewingUseCase(catalogRepo, viewingsRepo)
	getUserViewingsUC := usecase.NewGetUserViewingsUseCase(viewingsRepo)
	getPropertyViewingsUC := usecase.NewGetPropertyViewingsUseCase(viewingsRepo, catalogRepo)
	updateViewingStatusUC := usecase.NewUpdateViewingStatusUseCase(viewingsRepo, catalogRepo)

	createLeadUC := usecase.NewCreateLeadUseCase(leadsRepo, catalogRepo, notificationsAdapter)
	getLeadsUC := usecase.NewGetLeadsUseCase(leadsRepo)
	updateLeadStatusUC := usecase.NewUpdateLeadStatusUseCase(leadsRepo, catalogRepo)

	saveSearchUC := usecase.NewSaveSearchUseCase(savedSearchRepo, criteriaValidator)
	getSavedSearchesUC := usecase.NewGetSavedSearchesUseCase(savedSearchRepo)
	deleteSavedSearchUC := usecase.NewDeleteSavedSearchUseCase(savedSearchRepo)

	createPaymentOrderUC := usecase.NewCreatePaymentOrderUseCase(paymentsRepo, catalogRepo)
	verifyPaymentUC := usecase.NewVerifyPaymentUseCase(paymentsRepo, storageRepo, appConfig.Payments.KeySecret)
	getUserPaymentsUC := usecase.NewGetUserPaymentsUseCase(paymentsRepo)

	propertyAnalyticsUC := usecase.NewGetPropertyAnalyticsUseCase(catalogRepo, leadsRepo, viewingsRepo)
	dashboardStatsUC := usecase.NewGetDashboardStatsUseCase(statsRepo)

	checkAlertsUC := usecase.NewCheckSearchAlertsUseCase(savedSearchRepo, catalogRepo, notificationsAdapter)
	expireFeaturedUC := usecase.NewExpireFeaturedUseCase(storageRepo)

	// --- 6. REST API Server ---
	apiHandlers := rest.Handlers{
		Properties: rest.NewPropertiesHandler(
			findPropertiesUC, searchPropertiesUC, propertyDetailsUC, featuredUC,
			createPropertyUC, updatePropertyUC, deletePropertyUC, moderatePropertyUC,
		),
		Recommendations: rest.NewRecommendationsHandler(recommendationsUC, similarPropertiesUC),
		Favorites:       rest.NewFavoritesHandler(addToFavoritesUC, removeFromFavoritesUC, getUserFavoritesUC, getUserFavoriteIDsUC),
		Viewings:        rest.NewViewingsHandler(scheduleViewingUC, getUserViewingsUC, getPropertyViewingsUC, updateViewingStatusUC),
		Leads:           rest.NewLeadsHandler(createLeadUC, getLeadsUC, updateLeadStatusUC),
		SavedSearches:   rest.NewSavedSearchesHandler(saveSearchUC, getSavedSearchesUC, deleteSavedSearchUC),
		Payments:        rest.NewPaymentsHandler(createPaymentOrderUC, verifyPaymentUC, getUserPaymentsUC),
		Analytics:       rest.NewAnalyticsHandler(propertyAnalyticsUC, dashboardStatsUC),
		Internal:        rest.NewInternalHandler(checkAlertsUC, expireFeaturedUC),
	}

	apiServer := rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.PORT,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
		CronSecret:     appConfig.CronSecret,
	}, apiHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// --- 7. Собираем приложение ---
	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		rabbitManager: rabbitManager,
		publisher:     publisher,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.publisher != nil {
			if err := a.publisher.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ publisher", err, nil)
			}
		}
		if a.rabbitManager != nil {
			if err := a.rabbitManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			} else {
				a.logger.Info("RabbitMQ connection closed.", nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

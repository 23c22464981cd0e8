package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/civease/civease/internal/pkg/config"
	"github.com/civease/civease/internal/pkg/database"
	"github.com/civease/civease/internal/pkg/health"
	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/middleware"
	"github.com/civease/civease/internal/pkg/nsqpub"
	"github.com/civease/civease/internal/pkg/server"
	"github.com/civease/civease/internal/pkg/storage"
	authorityHandler "github.com/civease/civease/services/authority/handler"
	authorityHTTP "github.com/civease/civease/services/authority/handler/http"
	authorityRepo "github.com/civease/civease/services/authority/repository"
	authorityUC "github.com/civease/civease/services/authority/usecase"
	citizenGateway "github.com/civease/civease/services/citizen/gateway"
	citizenHandler "github.com/civease/civease/services/citizen/handler"
	citizenHTTP "github.com/civease/civease/services/citizen/handler/http"
	citizenRepo "github.com/civease/civease/services/citizen/repository"
	citizenUC "github.com/civease/civease/services/citizen/usecase"
)

func main() {
	appName := "civease"
	configPath := config.GetEnv("CONFIG_PATH", "config/civease.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Apply schema
	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.MigrateSchema(migrateCtx, postgresClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for outbound SMS events
	var smsPublisher citizenGateway.Publisher
	if configs.NSQ.Enabled {
		producer, err := nsqpub.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		defer producer.Stop()
		smsPublisher = producer
	}

	// Initialize attachment store
	fileStore, err := storage.NewLocalStore(configs.Upload.Dir)
	if err != nil {
		zapLogger.Fatal("Failed to initialize upload store", zap.Error(err))
	}

	// Initialize repositories
	citizenRepository := citizenRepo.NewCitizenRepo(configs, postgresClient.GetDB())
	authorityRepository := authorityRepo.NewAuthorityRepo(configs, postgresClient.GetDB())

	// Initialize gateways
	smsGateway := citizenGateway.NewSMSGateway(smsPublisher, configs)

	// Initialize usecases
	citizenUsecase := citizenUC.NewCitizenUC(citizenRepository, smsGateway, fileStore, configs)
	authorityUsecase := authorityUC.NewAuthorityUC(authorityRepository, configs)

	// Initialize handlers
	citizenHandlers := citizenHandler.NewHandler(
		citizenHTTP.NewAuthHandler(citizenUsecase),
		citizenHTTP.NewProblemHandler(citizenUsecase),
		redisClient,
		configs,
	)
	authorityHandlers := authorityHandler.NewHandler(
		authorityHTTP.NewAuthHandler(authorityUsecase),
		authorityHTTP.NewProblemHandler(authorityUsecase),
		configs,
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoint
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	// Register service routes
	citizenHandlers.RegisterRoutes(e)
	authorityHandlers.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", zap.Error(err))
	}
}

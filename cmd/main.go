package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"

	"github.com/shenikar/hive_reporting_system/internal/classifier"
	"github.com/shenikar/hive_reporting_system/internal/config"
	v1 "github.com/shenikar/hive_reporting_system/internal/handler/http/v1"
	"github.com/shenikar/hive_reporting_system/internal/metrics"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/region"
	"github.com/shenikar/hive_reporting_system/internal/repository"
	"github.com/shenikar/hive_reporting_system/internal/repository/memory"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/shenikar/hive_reporting_system/internal/webhook"
	"github.com/shenikar/hive_reporting_system/pkg/logger"
	"github.com/shenikar/hive_reporting_system/pkg/postgres"
	redisclient "github.com/shenikar/hive_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/hive_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Hive Reporting System API
// @version 1.0
// @description Citizen reports of wasp and honeybee nests, beekeeper reservations and removal proofs.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, source string, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://"+source,
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// openRedis подключается к Redis. Для memory-хранилища Redis необязателен:
// при недоступности возвращается nil, уведомления пишутся только в историю, а регионы не кэшируются
func openRedis(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*redis.Client, error) {
	client, err := redisclient.NewRedisClient(ctx, cfg)
	if err == nil {
		log.Info("Successfully connected to Redis")
		return client, nil
	}
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.WithError(err).Warn("Redis is unavailable, push delivery and region cache are disabled")
		return nil, nil
	}
	return nil, err
}

// seedDemoMembers добавляет в memory-хранилище по одному участнику каждой роли
func seedDemoMembers(store *memory.Store, log *logrus.Logger) {
	for _, m := range []models.Member{
		{ID: uuid.New(), Role: models.RoleReporter, Nickname: "demo-reporter"},
		{ID: uuid.New(), Role: models.RoleBeekeeper, Nickname: "demo-beekeeper"},
	} {
		store.AddMember(m)
		log.WithFields(logrus.Fields{"member_id": m.ID, "role": m.Role}).Info("Seeded demo member")
	}
}

func main() {
	migrationsDir := pflag.String("migrations", "migrations", "directory with SQL migrations")
	skipMigrations := pflag.Bool("skip-migrations", false, "do not apply migrations on startup")
	demoMembers := pflag.Bool("demo-members", false, "seed demo members (memory storage only)")
	pflag.Parse()

	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	metrics.Register()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := openRedis(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Инициализация хранилища
	var (
		store        service.HiveStore
		regionSource region.Source
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		mem := memory.NewStore()
		mem.AddRegions(region.SeoulDistricts...)
		if *demoMembers {
			seedDemoMembers(mem, log)
		}
		store, regionSource = mem, mem
		log.Warn("Using in-memory storage, data is lost on restart")
	default:
		if !*skipMigrations {
			if err := runMigrations(cfg, *migrationsDir, log); err != nil {
				log.Fatalf("Failed to run database migrations: %v", err)
			}
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		store = repository.NewHiveRepository(dbpool)
		regionSource = repository.NewRegionRepository(dbpool)
	}

	// Инициализация издателя уведомлений и воркера доставки
	var publisher webhook.Publisher
	if redisClient != nil {
		publisher = webhook.NewRedisPublisher(redisClient)
		worker := webhook.NewWorker(redisClient, log, cfg)
		worker.Start(ctx)
	}
	dispatcher := service.NewDispatcher(publisher, store, log, cfg.NotifyPublishTimeout)

	// Инициализация сервисов
	regions := region.NewResolver(regionSource, redisClient, cfg.RegionCacheTTL, log)
	imageClassifier := classifier.NewClient(cfg, log)
	lifecycle := service.NewLifecycleEngine(store, regions, imageClassifier, dispatcher, log, cfg)
	query := service.NewQueryService(store, log)
	profile := service.NewMemberService(store, regions, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(lifecycle, query, store, profile, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер уведомлений вместе с сервером
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	// дожидаемся уведомлений, начатых до остановки
	dispatcher.Wait()

	log.Info("Server gracefully stopped")
}

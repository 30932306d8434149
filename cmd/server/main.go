package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waltgoat/walker-app/internal/api"
	"waltgoat/walker-app/internal/cache"
	"waltgoat/walker-app/internal/challenge"
	"waltgoat/walker-app/internal/config"
	"waltgoat/walker-app/internal/logging"
	"waltgoat/walker-app/internal/repository"
	"waltgoat/walker-app/internal/repository/memory"
	"waltgoat/walker-app/internal/repository/mongo"
	"waltgoat/walker-app/internal/service"
	"waltgoat/walker-app/internal/storage"
	"waltgoat/walker-app/internal/telemetry/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

type repositories struct {
	users      repository.UserRepository
	exercises  repository.ExerciseRepository
	sessions   repository.SessionRepository
	plans      repository.PlanRepository
	challenges repository.ChallengeRepository
}

// @title Walker API
// @version 1.0
// @description Walks, strength circuits, training plans and weekly challenges.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret (JWT_SECRET) must be set")
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Logging.File,
		LogToStdout:   cfg.Logging.ToStdout,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.JSON,
	})
	log.Infof("starting walker server, storage driver: %s", cfg.Storage.Driver)

	// --- Repositories ---
	repos, closeRepos, err := openRepositories(cfg)
	if err != nil {
		log.Fatalf("could not open repositories: %s", err)
	}
	defer closeRepos()

	// --- Catalog ---
	catalogCtx, cancelCatalog := context.WithTimeout(context.Background(), 10*time.Second)
	exerciseCatalog, err := service.LoadCatalog(catalogCtx, cfg.Catalog.Source, repos.exercises)
	cancelCatalog()
	if err != nil {
		log.Fatalf("could not load exercise catalog: %s", err)
	}
	log.Infof("exercise catalog ready: %d exercises from %s", exerciseCatalog.Len(), cfg.Catalog.Source)

	// --- Track Storage ---
	var tracks storage.ObjectStorage
	if cfg.S3.Enabled {
		tracks, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %s", err)
		}
	} else {
		log.Info("object storage disabled, walk tracks are stored inline")
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, registry)

	// --- Services ---
	statsService := service.NewStatsService(
		repos.sessions,
		cache.NewJSONCache(cfg.Stats.CacheSizeMB, cfg.Stats.CacheTTL),
		metricsManager,
		cfg.Stats.SessionLimit,
	)
	services := api.Services{
		Auth:      service.NewAuthService(repos.users, cfg.JWT.Secret, cfg.JWT.Expiration),
		Profile:   service.NewProfileService(repos.users),
		Sessions:  service.NewSessionService(repos.sessions, tracks, statsService, metricsManager, cfg.Sessions.ListLimit),
		Exercises: service.NewExerciseService(exerciseCatalog),
		Plans:     service.NewPlanService(repos.users, repos.plans, exerciseCatalog, metricsManager),
		Stats:     statsService,
		Challenges: service.NewChallengeService(
			repos.users, repos.challenges, repos.sessions,
			challenge.NewEngine(), metricsManager, cfg.Stats.SessionLimit,
		),
	}

	// --- HTTP ---
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	api.SetupRoutes(router, cfg.JWT.Secret, services, metricsManager, registry)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}

	log.Info("server exiting")
}

func openRepositories(cfg config.Config) (*repositories, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		log.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:      store.Users(),
			exercises:  store.Exercises(),
			sessions:   store.Sessions(),
			plans:      store.Plans(),
			challenges: store.Challenges(),
		}, func() {}, nil
	case "", "mongo":
	default:
		return nil, nil, errors.New("unknown storage driver " + cfg.Storage.Driver)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return nil, nil, err
	}
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("database connection established")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, appDB)
		log.Info("index creation process completed")
	}()

	closeFn := func() {
		log.Info("disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %s", err)
		}
	}

	return &repositories{
		users:      mongo.NewMongoUserRepository(appDB),
		exercises:  mongo.NewMongoExerciseRepository(appDB),
		sessions:   mongo.NewMongoSessionRepository(appDB),
		plans:      mongo.NewMongoPlanRepository(appDB),
		challenges: mongo.NewMongoChallengeRepository(appDB),
	}, closeFn, nil
}

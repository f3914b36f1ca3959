package api

import (
	"context"

	"adagency/internal/app/checkout"
	"adagency/internal/app/config"
	"adagency/internal/app/domaincheck"
	"adagency/internal/app/dsn"
	"adagency/internal/app/handler"
	"adagency/internal/app/mailer"
	"adagency/internal/app/middleware"
	"adagency/internal/app/payment"
	"adagency/internal/app/redis"
	"adagency/internal/app/repository"
	"adagency/internal/app/storage"
	"adagency/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer wires every component together and runs the HTTP server.
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("Error loading config: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("Error initializing repository: ", err)
	}

	ctx := context.Background()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Fatal("Error connecting to redis: ", err)
	}
	defer redisClient.Close()

	media, err := storage.NewMediaStore(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Fatal("Error connecting to minio: ", err)
	}

	checker := domaincheck.NewChecker(cfg.Registry, repo)
	gateway := payment.NewClient(cfg.Waafi)
	notifier := mailer.New(cfg.SMTP)
	orchestrator := checkout.NewOrchestrator(repo, gateway, notifier)

	// Background sweep closing out stale pending transactions.
	reconciler := checkout.NewReconciler(repo, cfg.Reconcile.Interval, cfg.Reconcile.PendingAge)
	reconcileCtx, stopReconciler := context.WithCancel(ctx)
	defer stopReconciler()
	go reconciler.Run(reconcileCtx)

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, media, checker, orchestrator, authHandler, cfg)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()
}

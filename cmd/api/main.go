package main

import (
	"context"
	"log"

	"courier-console/internal/core/backend"
	"courier-console/internal/core/cache"
	"courier-console/internal/core/config"
	"courier-console/internal/core/logger"
	"courier-console/internal/core/server"
	"courier-console/internal/features/access/guard"
	dashboardhandler "courier-console/internal/features/dashboard/handler"
	noticeadapter "courier-console/internal/features/notices/adapters"
	noticehandler "courier-console/internal/features/notices/handler"
	noticeservice "courier-console/internal/features/notices/service"
	orderadapter "courier-console/internal/features/orders/adapters"
	orderhandler "courier-console/internal/features/orders/handler"
	orderservice "courier-console/internal/features/orders/service"
	resourceadapter "courier-console/internal/features/resources/adapters"
	resourcehandler "courier-console/internal/features/resources/handler"
	resourceservice "courier-console/internal/features/resources/service"
	sessionadapter "courier-console/internal/features/session/adapters"
	sessionhandler "courier-console/internal/features/session/handler"
	sessionservice "courier-console/internal/features/session/service"

	"go.uber.org/zap"
)

// @title Courier Console API
// @version 1.0
// @description Back-office gateway for courier operations: sessions, role-based route guarding and the order workflow.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Durable storage for sessions and notices
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	backendClient := backend.NewClient(cfg.Backend)

	// Sessions
	sessionStorage := sessionadapter.NewRedisSessionStorage(redisCache, cfg.Session.KeyPrefix, cfg.Session.TTL)
	authProvider := sessionadapter.NewBackendAuthAdapter(backendClient)
	sessionSvc := sessionservice.NewSessionService(sessionStorage, authProvider, cfg.Session.TTL)
	sessionHdl := sessionhandler.NewSessionHandler(sessionSvc, cfg.Session)

	// Notices
	noticeRepo := noticeadapter.NewRedisNoticeRepository(redisCache, cfg.Session.NoticeTTL)
	noticeSvc := noticeservice.NewNoticeService(noticeRepo, cfg.Session.NoticeTTL)
	noticeHdl := noticehandler.NewNoticeHandler(noticeSvc)

	// Orders and dispatch
	workflow := orderservice.NewWorkflow(orderadapter.NewBackendGateway(backendClient), noticeSvc)
	composer := orderservice.NewComposer(workflow, cfg.Session.TTL)
	orderHdl := orderhandler.NewOrderHandler(workflow, composer)

	// Back-office resources
	resourceSvc := resourceservice.NewResourceService(resourceadapter.NewBackendRepository(backendClient), noticeSvc)
	resourceHdl := resourcehandler.NewResourceHandler(resourceSvc)

	dashboardHdl := dashboardhandler.NewDashboardHandler(noticeSvc)

	srv := server.New(cfg, map[string]server.Pinger{"redis": redisCache})
	srv.Protect(guard.New(sessionSvc, cfg.Session.CookieName))

	// Register Routes
	srv.App.Get("/", sessionHdl.LoginView)
	srv.App.Get("/login", sessionHdl.LoginView)
	srv.App.Post("/auth/login", sessionHdl.Login)
	srv.App.Post("/auth/logout", sessionHdl.Logout)
	srv.App.Get("/auth/session", sessionHdl.GetSession)
	srv.App.Post("/auth/session/refresh", sessionHdl.RefreshSession)

	srv.App.Get("/dashboard", dashboardHdl.GetDashboard)
	srv.App.Get("/dashboard/notices", noticeHdl.GetNotices)
	srv.App.Delete("/dashboard/notices", noticeHdl.DismissNotices)

	orderHdl.Register(srv.App)
	resourceHdl.Register(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"courier-console/internal/core/config"
	"courier-console/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "courier-console/docs/swagger"
)

// healthTimeout bounds each dependency check of /healthz.
const healthTimeout = 2 * time.Second

// Pinger is a dependency /healthz reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// deps are checked by /healthz.
	deps map[string]Pinger
}

// New creates a new Server instance with configured middleware and the public
// operational routes. Feature routes are mounted after Protect.
func New(cfg *config.AppConfig, deps map[string]Pinger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "courier-console",
		CaseSensitive:         true,
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	s := &Server{
		App:  app,
		cfg:  cfg,
		deps: deps,
	}

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", s.health)

	return s
}

// Protect installs guard in front of every route registered afterwards.
func (s *Server) Protect(guard fiber.Handler) {
	s.App.Use(guard)
}

// HealthResponse reports the state of each dependency.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (s *Server) health(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(s.deps))}

	for name, dep := range s.deps {
		ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
		err := dep.Ping(ctx)
		cancel()

		if err != nil {
			logger.Get().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Status = "degraded"
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

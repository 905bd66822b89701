// Package web assembles the fiber application serving the portfolio API.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	fiberlogger "github.com/GoFolio/GoFolio/internal/logger/adapter/fiber"
	"github.com/GoFolio/GoFolio/internal/uniuri"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/handler/blog"
	"github.com/GoFolio/GoFolio/internal/web/handler/contact"
	"github.com/GoFolio/GoFolio/internal/web/handler/health"
	"github.com/GoFolio/GoFolio/internal/web/handler/repos"
	"github.com/GoFolio/GoFolio/internal/web/handler/settings"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
	db    *gorm.DB
}

// Start starts the web service on the configured port.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	addr := fmt.Sprintf(":%d", s.cfg.Webserver.Port)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	s.WaitShutdown()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT/SIGTERM and then drains the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: flip the alive flag so the
	// checkalive endpoint fails and the LB drops this instance before the
	// listener closes.
	log.Info().Msgf(
		"graceful shutdown: returning 503 on %s for %d seconds",
		CheckAlivePath,
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive reports liveness; 503 once shutdown has begun.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// jsonErrorHandler renders unhandled fiber errors as JSON without leaking
// internals on 500s.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			AppName:       "GoFolio",
			CaseSensitive: true,
			Prefork:       false,
			Immutable:     true,
			ErrorHandler:  jsonErrorHandler,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(requestid.New(requestid.Config{
		Generator: uniuri.New,
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// admin token gate, before any admin route is registered
	app.Use(TokenAuth(cfg))

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	for _, h := range []handler.Service{
		&blog.Handler,
		&repos.Handler,
		&contact.Handler,
		&settings.Handler,
		&health.Handler,
	} {
		if err := h.Init(app, cfg, db); err != nil {
			return nil, err
		}
	}

	return service, nil
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-contrib/location"
	"github.com/gin-gonic/gin"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/clock"
	"github.com/justtrackio/crudgen/pkg/coffin"
	"github.com/justtrackio/crudgen/pkg/kernel"
	"github.com/justtrackio/crudgen/pkg/log"
)

// HandlerMetadata stores the Path and Method of a Handler.
type HandlerMetadata struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type HttpServer struct {
	kernel.EssentialModule

	logger   log.Logger
	server   *http.Server
	listener net.Listener
	settings *Settings
	healthy  *atomic.Bool
}

func New(name string, definer Definer) kernel.ModuleFactory {
	return func(ctx context.Context, config cfg.Config, logger log.Logger) (kernel.Module, error) {
		settings := &Settings{}
		if err := config.UnmarshalKey(HttpserverSettingsKey(name), settings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal httpserver settings: %w", err)
		}

		return NewWithSettings(name, definer, settings)(ctx, config, logger)
	}
}

func NewWithSettings(name string, definer Definer, settings *Settings) kernel.ModuleFactory {
	return func(ctx context.Context, config cfg.Config, logger log.Logger) (kernel.Module, error) {
		logger = logger.WithChannel(fmt.Sprintf("httpserver-%s", name))
		healthy := &atomic.Bool{}

		router, err := NewRouter(ctx, config, logger, definer, settings, healthy)
		if err != nil {
			return nil, err
		}

		return NewWithInterfaces(ctx, logger, router, settings, healthy)
	}
}

// NewRouter builds the gin engine with all middlewares, the health check and the routes of the definer.
func NewRouter(ctx context.Context, config cfg.Config, logger log.Logger, definer Definer, settings *Settings, healthy *atomic.Bool) (*gin.Engine, error) {
	var err error
	var definitions *Definitions
	var compressionMiddlewares, corsMiddlewares []gin.HandlerFunc

	gin.SetMode(settings.Mode)

	if compressionMiddlewares, err = configureCompression(settings.Compression); err != nil {
		return nil, fmt.Errorf("could not configure compression: %w", err)
	}

	if corsMiddlewares, err = configureCors(settings.Cors); err != nil {
		return nil, fmt.Errorf("could not configure cors: %w", err)
	}

	router := gin.New()
	router.Use(LoggingMiddleware(logger, settings.Logging))
	router.Use(compressionMiddlewares...)
	router.Use(RecoveryWithLogger(logger))
	router.Use(location.Default())
	router.Use(corsMiddlewares...)

	router.GET(HealthCheckPath, buildHealthCheckHandler(healthy))

	if definitions, err = definer(ctx, config, logger.WithChannel("handler")); err != nil {
		return nil, fmt.Errorf("could not define routes: %w", err)
	}

	buildRouter(definitions, router)

	for _, route := range definitions.Routes() {
		logger.Debug(ctx, "registered route %s %s", route.Method, route.Path)
	}

	return router, nil
}

func NewWithInterfaces(ctx context.Context, logger log.Logger, router *gin.Engine, settings *Settings, healthy *atomic.Bool) (*HttpServer, error) {
	server := &http.Server{
		Addr:         ":" + settings.Port,
		Handler:      router,
		ReadTimeout:  settings.Timeout.Read,
		WriteTimeout: settings.Timeout.Write,
		IdleTimeout:  settings.Timeout.Idle,
	}

	var err error
	var listener net.Listener

	// open the port already while booting, so connections are accepted as soon as the module runs
	if listener, err = net.Listen("tcp", server.Addr); err != nil {
		return nil, fmt.Errorf("can not listen on address %s: %w", server.Addr, err)
	}

	logger.Info(ctx, "serving httpserver requests on address %s", listener.Addr().String())

	return &HttpServer{
		logger:   logger,
		server:   server,
		listener: listener,
		settings: settings,
		healthy:  healthy,
	}, nil
}

func (s *HttpServer) Run(ctx context.Context) error {
	go coffin.RunLabeled(ctx, "httpserver/waitForStop", func() {
		s.waitForStop(ctx)
	})

	err := s.server.Serve(s.listener)

	if !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error(ctx, "server closed unexpected: %w", err)

		return err
	}

	s.logger.Info(ctx, "leaving httpserver")

	return nil
}

func (s *HttpServer) waitForStop(ctx context.Context) {
	s.healthy.Store(true)
	<-ctx.Done()
	s.healthy.Store(false)

	// the run context is already canceled, log with a fresh one
	logCtx := context.Background()

	if s.settings.Timeout.Drain > 0 {
		s.logger.Info(logCtx, "waiting %s until shutting down the server", s.settings.Timeout.Drain)
		<-clock.Provider.After(s.settings.Timeout.Drain)
	}

	shutdownCtx, cancel := context.WithTimeout(logCtx, s.settings.Timeout.Shutdown)
	defer cancel()

	s.logger.Info(logCtx, "trying to gracefully shutdown httpserver")

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error(logCtx, "server shutdown: %w", err)
	}
}

func (s *HttpServer) GetPort() (*int, error) {
	if s == nil {
		return nil, errors.New("httpserver is nil, module is not yet running")
	}

	if s.listener == nil {
		return nil, errors.New("could not get port. module is not yet running")
	}

	address := s.listener.Addr().String()
	_, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return nil, fmt.Errorf("could not get port from address %s: %w", address, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("can not convert port string to int: %w", err)
	}

	return &port, nil
}

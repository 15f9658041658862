package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mynaming/adapters/grpchealth"
	"mynaming/adapters/naminghttp"
	"mynaming/api"
	"mynaming/domain"
	"mynaming/handlers"
	"mynaming/interfaces"
	"mynaming/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyCalc service")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_name", config.ServiceName,
		"service_port_http", config.HTTPPort,
		"naming_servers", fmt.Sprint(config.NamingServers),
		"lease_seconds", config.LeaseSeconds,
	)

	dispatcher := newCalcDispatcher(logger)

	e, err := newServer(dispatcher, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to build HTTP server", "err", err)
		os.Exit(1)
	}

	var healthServer *grpchealth.Server
	if config.GRPCPort != 0 {
		healthServer = grpchealth.NewServer(config.ServiceName, logger)
		if err := healthServer.Listen(config.GRPCPort); err != nil {
			level.Error(logger).Log("msg", "Failed to start gRPC health server", "err", err)
			os.Exit(1)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	registrar := newRegistrar(config, dispatcher.Methods(), &http.Client{}, logger)
	registrar.Start(context.Background())

	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	registrar.Stop(shutdownCtx)
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if healthServer != nil {
		healthServer.Stop()
	}

	level.Info(logger).Log("msg", "Server stopped")
}

// newServer mounts POST /invoke over invoker with request validation.
func newServer(invoker interfaces.Invoker, logger log.Logger) (*echo.Echo, error) {
	validator, err := handlers.OpenAPIValidator(api.Spec)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterInvokeHandlers(e, handlers.NewInvokeServer(invoker, logger), validator)
	return e, nil
}

// newRegistrar describes this instance and binds it to every configured naming node.
func newRegistrar(config *Config, methods []string, client *http.Client, logger log.Logger) *service.Registrar {
	entry := domain.Entry{
		Name:         config.ServiceName,
		Host:         config.ServiceHost,
		Port:         config.HTTPPort,
		Kind:         domain.KindRPC,
		Iface:        methods,
		LeaseSeconds: service.Lease(config.LeaseSeconds),
	}

	clients := make([]interfaces.NamingClient, 0, len(config.NamingServers))
	for _, url := range config.NamingServers {
		clients = append(clients, naminghttp.NamingHTTP(url, client))
	}
	return service.NewRegistrar(entry, clients, logger)
}

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
	"mynaming/adapters/myredis"
	"mynaming/adapters/naminghttp"
	"mynaming/api"
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

	level.Info(logger).Log("msg", "Starting MyNaming node")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"node_id", config.NodeID,
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"delegation_targets", fmt.Sprint(config.DelegationTargets),
		"delegation_timeout", config.DelegationTimeout,
		"max_hops", config.MaxHops,
		"redis_addr", config.Redis.Addr,
	)

	store := service.NewMemoryStore()
	if config.Redis.Addr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		store, err = myredis.NewEntryStore(ctx, redisClient, config.NodeID)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to prepare Redis store", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
	}

	e, err := newServer(config, store, &http.Client{}, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to build HTTP server", "err", err)
		os.Exit(1)
	}

	var healthServer *grpchealth.Server
	if config.GRPCPort != 0 {
		healthServer = grpchealth.NewServer("mynaming.Node", logger)
		if err := healthServer.Listen(config.GRPCPort); err != nil {
			level.Error(logger).Log("msg", "Failed to start gRPC health server", "err", err)
			os.Exit(1)
		}
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if healthServer != nil {
		healthServer.Stop()
	}

	level.Info(logger).Log("msg", "Server stopped")
}

// newServer wires a naming node over store and mounts its HTTP API with request validation.
// client is used for delegation to peer nodes.
func newServer(config *Config, store interfaces.EntryStore, client *http.Client, logger log.Logger) (*echo.Echo, error) {
	var node interfaces.NamingNode
	{
		node = service.NewNode(service.NodeConfig{
			ID:                config.NodeID,
			DelegationTargets: config.DelegationTargets,
			DelegationTimeout: config.DelegationTimeout,
			MaxHops:           config.MaxHops,
		}, store, naminghttp.RemoteResolverHTTP(client), service.NewTimeProvider(time.Now), logger)
	}

	validator, err := handlers.OpenAPIValidator(api.Spec)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterNamingHandlers(e, handlers.NewNamingServer(node, logger), validator)
	return e, nil
}

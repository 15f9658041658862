// Package grpchealth exposes grpc.health.v1.Health next to the HTTP API of a process.
package grpchealth

import (
	"fmt"
	"net"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server is a gRPC server carrying only the health and reflection services.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	logger     log.Logger
}

// NewServer creates a health server reporting SERVING for "" and for serviceName.
func NewServer(serviceName string, logger log.Logger) *Server {
	grpcServer := grpc.NewServer()

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	if serviceName != "" {
		healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)
	}
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     log.WithPrefix(logger, "component", "GRPCHealth"),
	}
}

// Listen opens the tcp port and serves in the background.
func (s *Server) Listen(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on %d: %w", port, err)
	}
	go s.Serve(lis)
	return nil
}

// Serve blocks serving lis until Stop.
func (s *Server) Serve(lis net.Listener) {
	level.Info(s.logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr())
	if err := s.grpcServer.Serve(lis); err != nil {
		level.Error(s.logger).Log("msg", "gRPC server error", "err", err)
	}
}

// Stop reports NOT_SERVING to watchers then stops gracefully.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env variable names.
const (
	envHTTPPort      = "SERVICE_PORT_HTTP"
	envGRPCPort      = "SERVICE_PORT_GRPC"
	envServiceName   = "SERVICE_NAME"
	envServiceHost   = "SERVICE_HOST"
	envNamingServers = "NAMING_SERVERS"
	envLeaseSeconds  = "LEASE_SECONDS"
)

const (
	defaultServiceName = "org.example.calc"
	defaultServiceHost = "127.0.0.1"
)

type Config struct {
	HTTPPort      int
	GRPCPort      int
	ServiceName   string
	ServiceHost   string // address announced to naming nodes
	NamingServers []string
	LeaseSeconds  int // 0 registers without a lease
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP and NAMING_SERVERS are required.
func LoadConfig() (*Config, error) {
	config := &Config{
		ServiceName: defaultServiceName,
		ServiceHost: defaultServiceHost,
	}

	httpPortStr := os.Getenv(envHTTPPort)
	if httpPortStr == "" {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}
	config.HTTPPort = httpPort

	if v := os.Getenv(envGRPCPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envGRPCPort, err)
		}
		config.GRPCPort = port
	}

	if v := strings.TrimSpace(os.Getenv(envServiceName)); v != "" {
		config.ServiceName = v
	}
	if v := strings.TrimSpace(os.Getenv(envServiceHost)); v != "" {
		config.ServiceHost = v
	}

	for _, s := range strings.Split(os.Getenv(envNamingServers), ",") {
		if s = strings.TrimSpace(s); s != "" {
			config.NamingServers = append(config.NamingServers, strings.TrimSuffix(s, "/"))
		}
	}
	if len(config.NamingServers) == 0 {
		return nil, fmt.Errorf("%s is required", envNamingServers)
	}

	if v := os.Getenv(envLeaseSeconds); v != "" {
		lease, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envLeaseSeconds, err)
		}
		if lease < 0 {
			return nil, fmt.Errorf("%s must not be negative", envLeaseSeconds)
		}
		config.LeaseSeconds = lease
	}

	return config, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mynaming/adapters/myredis"
	"mynaming/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort          = "SERVICE_PORT_HTTP"
	envGRPCPort          = "SERVICE_PORT_GRPC"
	envNodeID            = "NODE_ID"
	envDelegationTargets = "DELEGATION_TARGETS"
	envDelegationTimeout = "DELEGATION_TIMEOUT_MS"
	envMaxHops           = "MAX_DELEGATION_HOPS"
	envRedisAddr         = "REDIS_ADDR"
	envConfigPath        = "CONFIG_PATH"
)

// Config holds the naming node configuration. Values come from the optional YAML file at CONFIG_PATH,
// then environment variables override them.
type Config struct {
	HTTPPort          int
	GRPCPort          int // 0 disables the gRPC health endpoint
	NodeID            string
	DelegationTargets []string
	DelegationTimeout time.Duration
	MaxHops           int
	Redis             myredis.RedisConfig // empty Addr keeps the table in memory
}

// yamlConfig is the root struct for YAML unmarshalling.
type yamlConfig struct {
	HTTPPort            int      `yaml:"http_port"`
	GRPCPort            int      `yaml:"grpc_port"`
	NodeID              string   `yaml:"node_id"`
	DelegationTargets   []string `yaml:"delegation_targets"`
	DelegationTimeoutMs int      `yaml:"delegation_timeout_ms"`
	MaxDelegationHops   int      `yaml:"max_delegation_hops"`
	RedisAddr           string   `yaml:"redis_addr"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the node config. SERVICE_PORT_HTTP is required (from env or YAML). NODE_ID defaults
// to a random uuid, DELEGATION_TIMEOUT_MS to 2000 and MAX_DELEGATION_HOPS to 8. DELEGATION_TARGETS is a
// comma separated list of peer base URLs, tried in order.
func LoadConfig() (*Config, error) {
	config := &Config{
		DelegationTimeout: service.DefaultDelegationTimeout,
		MaxHops:           service.DefaultMaxHops,
	}

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		raw, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		config.HTTPPort = raw.HTTPPort
		config.GRPCPort = raw.GRPCPort
		config.NodeID = raw.NodeID
		config.DelegationTargets = raw.DelegationTargets
		config.Redis.Addr = raw.RedisAddr
		if raw.DelegationTimeoutMs != 0 {
			config.DelegationTimeout = time.Duration(raw.DelegationTimeoutMs) * time.Millisecond
		}
		if raw.MaxDelegationHops != 0 {
			config.MaxHops = raw.MaxDelegationHops
		}
	}

	if v := os.Getenv(envHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
		}
		config.HTTPPort = port
	}
	if config.HTTPPort == 0 {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	if config.HTTPPort < 0 || config.HTTPPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, config.HTTPPort)
	}

	if v := os.Getenv(envGRPCPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envGRPCPort, err)
		}
		config.GRPCPort = port
	}

	if v := strings.TrimSpace(os.Getenv(envNodeID)); v != "" {
		config.NodeID = v
	}
	if config.NodeID == "" {
		config.NodeID = uuid.NewString()
	}

	if v := os.Getenv(envDelegationTargets); v != "" {
		config.DelegationTargets = splitList(v)
	}
	for i, target := range config.DelegationTargets {
		config.DelegationTargets[i] = strings.TrimSuffix(target, "/")
	}

	if v := os.Getenv(envDelegationTimeout); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envDelegationTimeout, err)
		}
		config.DelegationTimeout = time.Duration(ms) * time.Millisecond
	}
	if config.DelegationTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive", envDelegationTimeout)
	}

	if v := os.Getenv(envMaxHops); v != "" {
		hops, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envMaxHops, err)
		}
		config.MaxHops = hops
	}
	if config.MaxHops <= 0 {
		return nil, fmt.Errorf("%s must be positive", envMaxHops)
	}

	if v := os.Getenv(envRedisAddr); v != "" {
		config.Redis.Addr = v
	}

	return config, nil
}

// splitList splits a comma separated list, dropping blanks.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

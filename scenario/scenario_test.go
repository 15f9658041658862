package scenario

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"mynaming/adapters/naminghttp"
	"mynaming/domain"
	"mynaming/handlers"
	"mynaming/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startStack runs a naming node and a calc-like service registered under serviceName.
func startStack(t *testing.T, serviceName string) *Config {
	t.Helper()
	logger := log.NewNopLogger()

	node := service.NewNode(service.NodeConfig{ID: "scenario-node"}, service.NewMemoryStore(),
		naminghttp.RemoteResolverHTTP(&http.Client{}), service.NewTimeProvider(time.Now), logger)
	ne := echo.New()
	service.RegisterErrorHandler(ne, logger)
	handlers.RegisterNamingHandlers(ne, handlers.NewNamingServer(node, logger))
	naming := httptest.NewServer(ne)
	t.Cleanup(naming.Close)

	d := service.NewDispatcher(logger).
		Handle("add", 2, func(_ context.Context, args []any) (any, error) {
			a, _ := service.NumberArg(args, 0)
			b, _ := service.NumberArg(args, 1)
			return a + b, nil
		}).
		Handle("mul", 2, func(_ context.Context, args []any) (any, error) {
			a, _ := service.NumberArg(args, 0)
			b, _ := service.NumberArg(args, 1)
			return a * b, nil
		}).
		Handle("echo", 1, func(_ context.Context, args []any) (any, error) {
			return args[0], nil
		})
	ce := echo.New()
	service.RegisterErrorHandler(ce, logger)
	handlers.RegisterInvokeHandlers(ce, handlers.NewInvokeServer(d, logger))
	calc := httptest.NewServer(ce)
	t.Cleanup(calc.Close)

	host, portStr, err := net.SplitHostPort(calc.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &Config{NamingAddr: naming.URL, ServiceName: serviceName}
	require.NoError(t, NewNamingClient(cfg).Register(context.Background(), domain.Entry{
		Name: serviceName, Host: host, Port: port, Iface: d.Methods(),
	}))
	return cfg
}

func TestScenarios(t *testing.T) {
	cfg := startStack(t, "org.example.calc")

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Run(name, context.Background(), cfg))
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{scenarioCalcProxy, scenarioHierarchicalResolve, scenarioLeaseExpiry}, Names())
	assert.Len(t, All(), 3)
}

func TestRun_UnknownScenario(t *testing.T) {
	err := Run("nope", context.Background(), &Config{})
	var unknown *UnknownScenarioError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Name)
	assert.Equal(t, Names(), unknown.Known)
	assert.Equal(t, `unknown scenario "nope" (known: calc_proxy, hierarchical_resolve, lease_expiry)`, err.Error())
}

func TestCalcProxy_ServiceMissing(t *testing.T) {
	cfg := startStack(t, "org.example.calc")
	cfg.ServiceName = "org.other"

	err := Run(scenarioCalcProxy, context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries")
}

package scenario

import (
	"context"
	"fmt"
	"time"

	"mynaming/adapters/invokehttp"
)

const scenarioCalcProxy = "calc_proxy"

func init() {
	Register(scenarioCalcProxy, runCalcProxy)
}

// runCalcProxy resolves the calc service and calls each of its methods through a proxy.
func runCalcProxy(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	proxy, err := ResolveProxy(ctx, cfg, cfg.ServiceName)
	if err != nil {
		return err
	}

	sum, err := invokehttp.Invoke[float64](ctx, proxy, "add", 2, 3)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if sum != 5 {
		return fmt.Errorf("add(2, 3): expected 5, got %v", sum)
	}

	product, err := invokehttp.Invoke[float64](ctx, proxy, "mul", 4, 5)
	if err != nil {
		return fmt.Errorf("mul: %w", err)
	}
	if product != 20 {
		return fmt.Errorf("mul(4, 5): expected 20, got %v", product)
	}

	echoed, err := invokehttp.Invoke[string](ctx, proxy, "echo", "hi")
	if err != nil {
		return fmt.Errorf("echo: %w", err)
	}
	if echoed != "hi" {
		return fmt.Errorf("echo(hi): expected hi, got %q", echoed)
	}

	if _, err := proxy.Call(ctx, "no_such_method"); err == nil {
		return fmt.Errorf("no_such_method: expected an error")
	}
	return nil
}

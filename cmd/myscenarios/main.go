package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"mynaming/scenario"
)

const (
	defaultNamingAddr  = "http://localhost:5000"
	defaultServiceName = "org.example.calc"
)

func main() {
	list := flag.Bool("list", false, "list available scenarios and exit")
	scenarioName := flag.String("scenario", "", "scenario to run (or pass as positional arg)")
	naming := flag.String("naming", "", "naming node base URL (default: NAMING_ADDR env or http://localhost:5000)")
	serviceName := flag.String("service", "", "name the calc service registered under (default: SERVICE_NAME env or org.example.calc)")
	flag.Parse()

	if *naming == "" {
		*naming = os.Getenv("NAMING_ADDR")
	}
	if *naming == "" {
		*naming = defaultNamingAddr
	}
	if *serviceName == "" {
		*serviceName = os.Getenv("SERVICE_NAME")
	}
	if *serviceName == "" {
		*serviceName = defaultServiceName
	}

	if *list {
		for _, name := range scenario.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	name := *scenarioName
	if name == "" {
		args := flag.Args()
		if len(args) > 0 {
			name = args[0]
		}
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: myscenarios [--list] [--scenario=NAME] [--naming=URL] [--service=NAME] [scenario_name]")
		fmt.Fprintln(os.Stderr, "  use --list to list scenarios")
		os.Exit(2)
	}

	cfg := &scenario.Config{
		NamingAddr:  strings.TrimSuffix(*naming, "/"),
		ServiceName: *serviceName,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	err := scenario.Run(name, ctx, cfg)

	fmt.Println("\n=== Scenario Result ===")
	fmt.Printf("Scenario: %s\n", name)

	if err != nil {
		var unknown *scenario.UnknownScenarioError
		if errors.As(err, &unknown) {
			fmt.Printf("Status: FAILED\n")
			fmt.Printf("Error: %v\n", err)
			fmt.Println("=====================")
			os.Exit(2)
		}
		fmt.Printf("Status: FAILED\n")
		fmt.Printf("Error: %v\n", err)
		fmt.Println("=====================")
		os.Exit(1)
	}

	fmt.Printf("Status: PASSED\n")
	fmt.Println("=====================")
	os.Exit(0)
}

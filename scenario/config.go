package scenario

import "net/http"

// Config holds settings for running a scenario.
type Config struct {
	// NamingAddr is the base URL of the naming node the scenarios talk to.
	NamingAddr string
	// ServiceName is the name the calc service registered under.
	ServiceName string
	// HTTPClient is used for naming and invoke calls; nil means a default client.
	HTTPClient *http.Client
}

func (c *Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{}
}

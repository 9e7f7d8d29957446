package appsflyer_go

import (
	"net/http"

	"github.com/block/appsflyer-go/api"
)

// Client sends server-to-server events to AppsFlyer for one application.
// It's safe for concurrent use: every call builds its own payload and
// the underlying http.Client is shared.
type Client struct {
	httpClient *http.Client

	events *api.Events
}

// NewClient creates a client for applicationId (the Android package name,
// or "id" followed by the App Store id for iOS) authenticated with developerKey.
func NewClient(applicationId, developerKey string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	return &Client{
		httpClient: httpClient,
		events:     api.NewEventsApi(applicationId, developerKey, httpClient, cfg.logger),
	}
}

func (c *Client) Events() *api.Events {
	return c.events
}

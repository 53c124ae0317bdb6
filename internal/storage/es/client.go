package es

import (
	"context"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}

type HealthChecker struct {
	client *elasticsearch.TypedClient
}

func NewHealthChecker(config ClientConfig) (*HealthChecker, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return &HealthChecker{client: client}, nil
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	ok, err := hc.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}

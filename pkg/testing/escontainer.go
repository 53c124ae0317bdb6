package testing

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const defaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"

// ESContainer is a disposable single-node Elasticsearch reachable over plain http
type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// NewESContainer starts Elasticsearch and terminates it when tb ends
func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	esContainer, err := elasticsearch.Run(ctx,
		defaultESImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithEnv(map[string]string{
			"ES_JAVA_OPTS": "-Xms512m -Xmx512m",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_cluster/health?wait_for_status=yellow").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	endpoint, err := esContainer.PortEndpoint(ctx, "9200/tcp", "http")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch endpoint: %v", err)
	}

	return &ESContainer{
		Container: esContainer,
		Address:   endpoint,
	}
}

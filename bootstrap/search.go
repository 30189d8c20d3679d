package bootstrap

import (
	"context"
	"fmt"

	"github.com/olivere/elastic/v7"
)

// NewSearchClient connects to the search engine over its HTTP hosts
// and verifies that the cluster answering is the configured one, the
// same guard the transport client enforced through cluster.name.
func NewSearchClient(ctx context.Context, env *Env) (*elastic.Client, error) {
	// The explicit cluster-health check below stands in for the
	// client's own startup ping.
	client, err := elastic.NewClient(
		elastic.SetURL(env.ESHTTPHosts...),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	health, err := client.ClusterHealth().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch cluster health: %w", err)
	}
	if env.ESClusterName != "" && health.ClusterName != env.ESClusterName {
		return nil, fmt.Errorf("elasticsearch cluster is %q, expected %q", health.ClusterName, env.ESClusterName)
	}
	return client, nil
}

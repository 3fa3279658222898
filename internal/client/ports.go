package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/ufm/internal/http"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

const portsPath = "/ufmRest/resources/ports"

// PortsClient implements ufm.PortsClient.
type PortsClient struct {
	httpClient *http.Client
}

// NewPortsClient creates a new ports client.
func NewPortsClient(httpClient *http.Client) *PortsClient {
	return &PortsClient{
		httpClient: httpClient,
	}
}

// List implements ufm.PortsClient.List.
func (c *PortsClient) List(ctx context.Context, filter *ufm.Filter) ([]ufm.Port, error) {
	resp, err := c.httpClient.Get(ctx, portsPath, url.Values{"sys_type": []string{"Computer"}})
	if err != nil {
		return nil, fmt.Errorf("listing ports: %w", translateError(err))
	}

	var ports []ufm.Port

	err = json.Unmarshal(resp.Body, &ports)
	if err != nil {
		return nil, ufm.NewInvalidConfigError("invalid response", err)
	}

	result := make([]ufm.Port, 0, len(ports))

	for i := range ports {
		if filter.Valid(&ports[i]) {
			result = append(result, ports[i])
		}
	}

	return result, nil
}

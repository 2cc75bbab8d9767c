// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/common/expfmt"

	"github.com/LAVASoftWorks/vkct-core/utils/rpc"

	dto "github.com/prometheus/client_model/go"
)

var errUnexpectedStatus = errors.New("unexpected status")

// Client scrapes the metrics endpoint of a running node.
type Client struct {
	uri string
}

func NewClient(uri string) *Client {
	return &Client{
		uri: strings.TrimSuffix(uri, "/") + Endpoint,
	}
}

// GetMetrics returns every metric family the node exposes, keyed by name.
func (c *Client) GetMetrics(ctx context.Context) (map[string]*dto.MetricFamily, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.uri, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", string(expfmt.FmtText))

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape %s: %w", c.uri, err)
	}
	defer rpc.CloseBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	var parser expfmt.TextParser
	return parser.TextToMetricFamilies(resp.Body)
}

// Sum adds up every sample of the counter or gauge family [name]. The second
// return is false if the family was not scraped.
func Sum(families map[string]*dto.MetricFamily, name string) (float64, bool) {
	family, ok := families[name]
	if !ok {
		return 0, false
	}
	var total float64
	for _, m := range family.GetMetric() {
		switch {
		case m.Counter != nil:
			total += m.GetCounter().GetValue()
		case m.Gauge != nil:
			total += m.GetGauge().GetValue()
		case m.Untyped != nil:
			total += m.GetUntyped().GetValue()
		}
	}
	return total, true
}

// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	server := httptest.NewServer(HTTPHandler())
	t.Cleanup(server.Close)

	LazyLoadCounter("count1")().Add(1)
	LazyLoadHistogram("hist1", nil)().Observe(3)
	LazyLoadHistogramVec("hist2", []string{"op"}, nil)().ObserveWithLabels(1, map[string]string{"thisIsNonsense": "butDoesntBreak"})
	LazyLoadCounterVec("countVec1", []string{"op"})().AddWithLabel(1, map[string]string{"thisIsNonsense": "butDoesntBreak"})
	LazyLoadGaugeVec("gaugeVec1", []string{"op"})().SetWithLabel(1, nil)
	LazyLoadGauge("gauge1")().Set(7)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

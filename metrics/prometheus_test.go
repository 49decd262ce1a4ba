// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T) map[string]*dto.MetricFamily {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily)
	for _, mf := range families {
		out[mf.GetName()] = mf
	}
	return out
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	count := LazyLoadCounter("ops")()
	countVec := LazyLoadCounterVec("ops_vec", []string{"op"})()
	hist := LazyLoadHistogram("exec", BucketExec)()
	histVec := LazyLoadHistogramVec("exec_vec", []string{"op"}, nil)()
	gauge := LazyLoadGauge("accounts")()
	gaugeVec := LazyLoadGaugeVec("targets", []string{"state"})()

	histTotal := 0
	for i := range 10 {
		count.Add(1)
		op := strconv.Itoa(i % 2)
		countVec.AddWithLabel(int64(i), map[string]string{"op": op})
		hist.Observe(int64(i))
		histVec.ObserveWithLabels(int64(i), map[string]string{"op": op})
		gauge.Add(1)
		histTotal += i
	}
	gaugeVec.SetWithLabel(3, map[string]string{"state": "enabled"})
	gaugeVec.SetWithLabel(5, map[string]string{"state": "enabled"})

	// same meter is returned for the same name
	require.Same(t, count, LazyLoadCounter("ops")())

	m := gather(t)
	require.Equal(t, float64(10), m["tcr_ops"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(histTotal), m["tcr_exec"].Metric[0].GetHistogram().GetSampleSum())
	require.Equal(t, float64(10), m["tcr_accounts"].Metric[0].GetGauge().GetValue())
	require.Equal(t, float64(5), m["tcr_targets"].Metric[0].GetGauge().GetValue())

	sumVec := m["tcr_ops_vec"].Metric[0].GetCounter().GetValue() + m["tcr_ops_vec"].Metric[1].GetCounter().GetValue()
	require.Equal(t, float64(histTotal), sumVec)

	sumHist := m["tcr_exec_vec"].Metric[0].GetHistogram().GetSampleSum() + m["tcr_exec_vec"].Metric[1].GetHistogram().GetSampleSum()
	require.Equal(t, float64(histTotal), sumHist)

	server := httptest.NewServer(HTTPHandler())
	defer server.Close()
	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "tcr_ops 10")
}

func TestLazyLoading(t *testing.T) {
	metrics = defaultNoopMetrics()

	for _, a := range []any{
		LazyLoadGauge("noopGauge")(),
		LazyLoadGaugeVec("noopGauge", nil)(),
		LazyLoadCounter("noopCounter")(),
		LazyLoadCounterVec("noopCounter", nil)(),
		LazyLoadHistogram("noopHist", nil)(),
		LazyLoadHistogramVec("noopHist", nil, nil)(),
	} {
		require.IsType(t, &noopMeters{}, a)
	}

	lazyGauge := LazyLoadGauge("lazyGauge")
	lazyGaugeVec := LazyLoadGaugeVec("lazyGaugeVec", nil)
	lazyCounter := LazyLoadCounter("lazyCounter")
	lazyCounterVec := LazyLoadCounterVec("lazyCounterVec", nil)
	lazyHistogram := LazyLoadHistogram("lazyHistogram", nil)
	lazyHistogramVec := LazyLoadHistogramVec("lazyHistogramVec", nil, nil)

	// after initialization, newly created metrics become of the prometheus type
	InitializePrometheusMetrics()

	require.IsType(t, &promGaugeMeter{}, lazyGauge())
	require.IsType(t, &promGaugeVecMeter{}, lazyGaugeVec())
	require.IsType(t, &promCountMeter{}, lazyCounter())
	require.IsType(t, &promCountVecMeter{}, lazyCounterVec())
	require.IsType(t, &promHistogramMeter{}, lazyHistogram())
	require.IsType(t, &promHistogramVecMeter{}, lazyHistogramVec())
}

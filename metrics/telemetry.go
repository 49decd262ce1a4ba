// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"sync"
)

// metrics is the process wide meter registry. It starts as a no-op implementation
// and is switched to prometheus by InitializePrometheusMetrics.
var metrics = defaultNoopMetrics()

// Metrics defines the interface for metrics service implementations
type Metrics interface {
	GetOrCreateCountMeter(name string) CountMeter
	GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter
	GetOrCreateGaugeMeter(name string) GaugeMeter
	GetOrCreateGaugeVecMeter(name string, labels []string) GaugeVecMeter
	GetOrCreateHistogramMeter(name string, buckets []int64) HistogramMeter
	GetOrCreateHistogramVecMeter(name string, labels []string, buckets []int64) HistogramVecMeter
	GetOrCreateHandler() http.Handler
}

// HTTPHandler returns the http handler for retrieving metrics
func HTTPHandler() http.Handler {
	return metrics.GetOrCreateHandler()
}

// NoOp reports whether metrics collection is disabled.
func NoOp() bool {
	_, ok := metrics.(*noopMetrics)
	return ok
}

// Standard histogram buckets, in milliseconds.
var (
	BucketExec     = []int64{0, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}
	BucketHTTPReqs = []int64{
		0, 1, 2, 5, 10, 20, 30, 50, 75, 100,
		150, 200, 300, 400, 500, 750, 1000,
		1500, 2000, 3000, 4000, 5000, 10000,
	}
)

// HistogramMeter aggregates reported measurements into buckets.
type HistogramMeter interface {
	Observe(int64)
}

// HistogramVecMeter is a HistogramMeter partitioned by labels.
type HistogramVecMeter interface {
	ObserveWithLabels(int64, map[string]string)
}

// CountMeter is a monotonically increasing counter, reset to zero on restart.
type CountMeter interface {
	Add(int64)
}

// CountVecMeter is a CountMeter partitioned by labels.
type CountVecMeter interface {
	AddWithLabel(int64, map[string]string)
}

// GaugeMeter is a single numeric value which can arbitrarily go up and down.
type GaugeMeter interface {
	Add(int64)
	Set(int64)
}

// GaugeVecMeter is a GaugeMeter partitioned by labels.
type GaugeVecMeter interface {
	AddWithLabel(int64, map[string]string)
	SetWithLabel(int64, map[string]string)
}

// lazyLoad defers resolving a meter against the registry to its first use, so
// package level meters can be declared before InitializePrometheusMetrics runs.
func lazyLoad[T any](f func(Metrics) T) func() T {
	var (
		once  sync.Once
		meter T
	)
	return func() T {
		once.Do(func() { meter = f(metrics) })
		return meter
	}
}

func LazyLoadHistogram(name string, buckets []int64) func() HistogramMeter {
	return lazyLoad(func(m Metrics) HistogramMeter { return m.GetOrCreateHistogramMeter(name, buckets) })
}

func LazyLoadHistogramVec(name string, labels []string, buckets []int64) func() HistogramVecMeter {
	return lazyLoad(func(m Metrics) HistogramVecMeter {
		return m.GetOrCreateHistogramVecMeter(name, labels, buckets)
	})
}

func LazyLoadCounter(name string) func() CountMeter {
	return lazyLoad(func(m Metrics) CountMeter { return m.GetOrCreateCountMeter(name) })
}

func LazyLoadCounterVec(name string, labels []string) func() CountVecMeter {
	return lazyLoad(func(m Metrics) CountVecMeter { return m.GetOrCreateCountVecMeter(name, labels) })
}

func LazyLoadGauge(name string) func() GaugeMeter {
	return lazyLoad(func(m Metrics) GaugeMeter { return m.GetOrCreateGaugeMeter(name) })
}

func LazyLoadGaugeVec(name string, labels []string) func() GaugeVecMeter {
	return lazyLoad(func(m Metrics) GaugeVecMeter { return m.GetOrCreateGaugeVecMeter(name, labels) })
}

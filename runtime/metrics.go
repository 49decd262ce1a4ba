// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/Ministry-of-Decentralization/token-curation/metrics"

var (
	metricOpsCount     = metrics.LazyLoadCounterVec("staking_ops_count", []string{"op", "result"})
	metricExecDuration = metrics.LazyLoadHistogramVec("runtime_exec_duration_ms", []string{"op"}, metrics.BucketExec)
	metricBatchSize    = metrics.LazyLoadHistogram("runtime_batch_size", []int64{1, 2, 5, 10, 20, 50, 100})

	// batches committed but not yet delivered to subscribers
	metricPendingBatches = metrics.LazyLoadGauge("runtime_pending_batches")
)

// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime executes ledger operations one batch at a time and publishes
// the notifications of every committed batch.
package runtime

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/builtin"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/custody"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/owner"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/reverts"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/staking"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/logdb"
	"github.com/Ministry-of-Decentralization/token-curation/state"
)

var logger = log.WithContext("pkg", "runtime")

// Ledger is the set of contracts bound to one execution state.
type Ledger struct {
	State   *state.State
	Owner   *owner.Owner
	Custody *custody.Custody
	Staking *staking.Staking
}

// NewLedger binds the builtin contracts to st.
func NewLedger(st *state.State, strategy weighting.Strategy) *Ledger {
	return &Ledger{
		State:   st,
		Owner:   builtin.Owner.WithState(st),
		Custody: builtin.Custody.WithState(st),
		Staking: builtin.Staking.WithState(st, strategy),
	}
}

// Runtime serializes ledger executions. Only one batch runs at a time and
// queries never observe a partially applied batch.
type Runtime struct {
	mu       sync.RWMutex
	stater   *state.Stater
	logDB    *logdb.LogDB
	strategy weighting.Strategy
	now      func() time.Time

	feed      events.Feed
	pendingMu sync.Mutex
	pending   [][]*events.Entry
	notify    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New create a new runtime.
func New(stater *state.Stater, logDB *logdb.LogDB, strategy weighting.Strategy) *Runtime {
	rt := &Runtime{
		stater:   stater,
		logDB:    logDB,
		strategy: strategy,
		now:      time.Now,
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	rt.wg.Add(1)
	go func() {
		defer rt.wg.Done()
		rt.publishLoop()
	}()
	return rt
}

func (rt *Runtime) Strategy() weighting.Strategy {
	return rt.strategy
}

// Execute runs ops in order as one atomic unit. The batch is committed only if
// every op succeeds, otherwise none of its writes or notifications survive.
// It returns the committed entries.
func (rt *Runtime) Execute(ctx context.Context, ops ...Op) ([]*events.Entry, error) {
	if len(ops) == 0 {
		return nil, nil
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := rt.stater.NewState()
	ledger := NewLedger(st, rt.strategy)

	var evs events.Events
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		opEvents, err := op.Run(ledger)
		metricExecDuration().ObserveWithLabels(time.Since(start).Milliseconds(), map[string]string{"op": op.Name})
		metricOpsCount().AddWithLabel(1, map[string]string{"op": op.Name, "result": result(err)})
		if err != nil {
			if !reverts.IsRevertErr(err) {
				logger.Warn("op failed", "op", op.Name, "index", i, "err", err)
			}
			return nil, errors.WithMessagef(err, "op %d (%s)", i, op.Name)
		}
		evs = append(evs, opEvents...)
	}

	entries, err := rt.commit(st.Stage(), evs)
	if err != nil {
		return nil, err
	}
	metricBatchSize().Observe(int64(len(ops)))
	rt.publish(entries)
	return entries, nil
}

// publish queues entries for the publish loop. Called under rt.mu, so the
// queue keeps commit order.
func (rt *Runtime) publish(entries []*events.Entry) {
	if len(entries) == 0 {
		return
	}
	rt.pendingMu.Lock()
	rt.pending = append(rt.pending, entries)
	metricPendingBatches().Set(int64(len(rt.pending)))
	rt.pendingMu.Unlock()

	select {
	case rt.notify <- struct{}{}:
	default:
	}
}

// publishLoop delivers queued batches to subscribers in commit order. A slow
// subscriber delays later batches but never blocks executions or queries.
func (rt *Runtime) publishLoop() {
	for {
		select {
		case <-rt.done:
			return
		case <-rt.notify:
		}
		for {
			rt.pendingMu.Lock()
			if len(rt.pending) == 0 {
				rt.pendingMu.Unlock()
				break
			}
			batch := rt.pending[0]
			rt.pending[0] = nil
			rt.pending = rt.pending[1:]
			metricPendingBatches().Set(int64(len(rt.pending)))
			rt.pendingMu.Unlock()

			rt.feed.Send(batch)

			select {
			case <-rt.done:
				return
			default:
			}
		}
	}
}

func (rt *Runtime) commit(stage *state.Stage, evs events.Events) ([]*events.Entry, error) {
	w := rt.logDB.NewWriter()
	entries, err := w.Write(uint64(rt.now().Unix()), evs)
	if err != nil {
		_ = w.Rollback()
		return nil, errors.Wrap(err, "write entries")
	}
	if err := stage.Commit(); err != nil {
		_ = w.Rollback()
		return nil, errors.Wrap(err, "commit state")
	}
	if err := w.Commit(); err != nil {
		logger.Error("state committed without its entries", "slots", stage.Len(), "entries", len(entries), "err", err)
		return nil, errors.Wrap(err, "commit entries")
	}
	logger.Debug("batch committed", "slots", stage.Len(), "entries", len(entries))
	return entries, nil
}

// Query runs fn over the latest committed state. Writes made by fn are discarded.
func (rt *Runtime) Query(fn func(l *Ledger) error) error {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	return fn(NewLedger(rt.stater.NewState(), rt.strategy))
}

// SubscribeEvents registers ch to receive the entries of every committed batch,
// in commit order. Delivery is asynchronous, a batch may arrive after Execute
// returned. A subscriber not draining ch holds back delivery to every other one.
func (rt *Runtime) SubscribeEvents(ch chan []*events.Entry) event.Subscription {
	return rt.feed.Subscribe(ch)
}

// LogDB returns the notification index.
func (rt *Runtime) LogDB() *logdb.LogDB {
	return rt.logDB
}

// Close stops publishing and unsubscribes all event subscribers. Batches not
// yet delivered are dropped.
func (rt *Runtime) Close() {
	rt.closeOnce.Do(func() {
		close(rt.done)
		// unblocks a send stuck on a subscriber
		rt.feed.Close()
		rt.wg.Wait()
	})
}

func result(err error) string {
	switch {
	case err == nil:
		return "success"
	case reverts.IsRevertErr(err):
		return "revert"
	default:
		return "error"
	}
}

// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import "github.com/ethereum/go-ethereum/event"

// Feed fans committed entries out to subscribers. Each send carries the
// entries of one committed execution, in order.
type Feed struct {
	feed  event.Feed
	scope event.SubscriptionScope
}

// Send delivers entries to all subscribers and returns the number of them.
// It blocks until every subscriber received the batch.
func (f *Feed) Send(entries []*Entry) int {
	if len(entries) == 0 {
		return 0
	}
	return f.feed.Send(entries)
}

// Subscribe registers ch to receive committed entries.
func (f *Feed) Subscribe(ch chan []*Entry) event.Subscription {
	return f.scope.Track(f.feed.Subscribe(ch))
}

// Close unsubscribes all subscribers.
func (f *Feed) Close() {
	f.scope.Close()
}

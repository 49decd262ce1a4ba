// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"context"

	"github.com/Ministry-of-Decentralization/token-curation/events"
)

// Reader defines the query side of the notification index.
type Reader interface {
	// FilterEvents filters entries based on the given criteria.
	FilterEvents(ctx context.Context, filter *EventFilter) ([]*events.Entry, error)

	// LastSeq returns the sequence number of the newest entry, 0 when empty.
	LastSeq() (uint64, error)
}

var _ Reader = (*LogDB)(nil)

// EventWriter defines transactional appending of entries.
type EventWriter interface {
	// Write appends evs as consecutive entries and returns them.
	Write(time uint64, evs events.Events) ([]*events.Entry, error)

	// Commit commits accumulated entries.
	Commit() error

	// Rollback rollbacks all uncommitted entries.
	Rollback() error

	// UncommittedCount returns the count of uncommitted entries.
	UncommittedCount() int
}

var _ EventWriter = (*Writer)(nil)

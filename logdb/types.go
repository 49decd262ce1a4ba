// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

// Range is an inclusive range of sequence numbers. A To below From leaves the range open ended.
type Range struct {
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

// EventCriteria matches entries whose fields equal every non-empty criterion.
type EventCriteria struct {
	Name    string
	Account *tcr.Address
	Target  *tcr.TargetID
}

// EventFilter selects entries matching any of the criteria within the range.
type EventFilter struct {
	CriteriaSet []*EventCriteria
	Range       *Range
	Options     *Options
	Order       Order // default asc
}

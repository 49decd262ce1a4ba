// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"fmt"
	"math"

	"github.com/Ministry-of-Decentralization/token-curation/events"
	"github.com/Ministry-of-Decentralization/token-curation/logdb"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

type EventCriteria struct {
	Name    string        `json:"name,omitempty"`
	Account *tcr.Address  `json:"account,omitempty"`
	Target  *tcr.TargetID `json:"target,omitempty"`
}

type Range struct {
	From *uint64 `json:"from,omitempty"`
	To   *uint64 `json:"to,omitempty"`
}

type Options struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

type EventFilter struct {
	CriteriaSet []*EventCriteria `json:"criteriaSet"`
	Range       *Range           `json:"range"`
	Options     *Options         `json:"options"`
	Order       logdb.Order      `json:"order"`
}

func convertEventFilter(filter *EventFilter) (*logdb.EventFilter, error) {
	f := &logdb.EventFilter{Order: filter.Order}
	switch filter.Order {
	case "", logdb.ASC, logdb.DESC:
	default:
		return nil, fmt.Errorf("order: unknown value %q", filter.Order)
	}

	for i, c := range filter.CriteriaSet {
		if c.Name != "" && !events.IsKnown(c.Name) {
			return nil, fmt.Errorf("criteriaSet[%d]: unknown event %q", i, c.Name)
		}
		f.CriteriaSet = append(f.CriteriaSet, &logdb.EventCriteria{
			Name:    c.Name,
			Account: c.Account,
			Target:  c.Target,
		})
	}

	if filter.Range != nil {
		f.Range = &logdb.Range{To: math.MaxInt64}
		if filter.Range.From != nil {
			f.Range.From = *filter.Range.From
		}
		if filter.Range.To != nil {
			if *filter.Range.To < f.Range.From {
				return nil, fmt.Errorf("range: to must not be below from")
			}
			f.Range.To = *filter.Range.To
		}
		if f.Range.From > math.MaxInt64 || f.Range.To > math.MaxInt64 {
			return nil, fmt.Errorf("range: exceeds the maximum allowed value of %d", int64(math.MaxInt64))
		}
	}

	if filter.Options != nil {
		f.Options = &logdb.Options{Offset: filter.Options.Offset, Limit: filter.Options.Limit}
	}
	return f, nil
}

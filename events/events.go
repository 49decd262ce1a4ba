// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package events defines the notifications emitted by ledger operations.
package events

import (
	"encoding/json"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

// Event is a notification emitted by a successful operation.
type Event interface {
	Name() string
	// Topics returns the indexed fields of the event.
	Topics() Topics
}

// Topics are the indexed fields of an event. Nil means the event has no such field.
type Topics struct {
	Account *tcr.Address
	Target  *tcr.TargetID
}

// Events is the ordered list of notifications of an operation.
type Events []Event

// Names returns event names in order.
func (evs Events) Names() []string {
	names := make([]string, 0, len(evs))
	for _, ev := range evs {
		names = append(names, ev.Name())
	}
	return names
}

const (
	StakingEnabledName       = "StakingEnabled"
	StakingDisabledName      = "StakingDisabled"
	StakedName               = "Staked"
	WeightedStakedName       = "WeightedStaked"
	UnstakedName             = "Unstaked"
	WeightedUnstakedName     = "WeightedUnstaked"
	DepositedName            = "Deposited"
	WithdrawnName            = "Withdrawn"
	OwnershipTransferredName = "OwnershipTransferred"
)

type StakingEnabled struct {
	ID tcr.TargetID `json:"id"`
}

func (e *StakingEnabled) Name() string   { return StakingEnabledName }
func (e *StakingEnabled) Topics() Topics { return Topics{Target: &e.ID} }

type StakingDisabled struct {
	ID tcr.TargetID `json:"id"`
}

func (e *StakingDisabled) Name() string   { return StakingDisabledName }
func (e *StakingDisabled) Topics() Topics { return Topics{Target: &e.ID} }

// Staked reports a raw stake. Total is the account's raw stake across all targets.
type Staked struct {
	Account tcr.Address  `json:"account"`
	Amount  *uint256.Int `json:"amount"`
	Total   *uint256.Int `json:"total"`
	Data    tcr.TargetID `json:"data"`
}

func (e *Staked) Name() string   { return StakedName }
func (e *Staked) Topics() Topics { return Topics{Account: &e.Account, Target: &e.Data} }

// WeightedStaked follows Staked. WeightedAmount is the change of the record's
// weighted amount, WeightedTotal the account's weighted stake across all targets.
type WeightedStaked struct {
	Account        tcr.Address  `json:"account"`
	Amount         *uint256.Int `json:"amount"`
	WeightedAmount *uint256.Int `json:"weightedAmount"`
	Total          *uint256.Int `json:"total"`
	WeightedTotal  *uint256.Int `json:"weightedTotal"`
	Data           tcr.TargetID `json:"data"`
}

func (e *WeightedStaked) Name() string   { return WeightedStakedName }
func (e *WeightedStaked) Topics() Topics { return Topics{Account: &e.Account, Target: &e.Data} }

type Unstaked struct {
	Account tcr.Address  `json:"account"`
	Amount  *uint256.Int `json:"amount"`
	Total   *uint256.Int `json:"total"`
	Data    tcr.TargetID `json:"data"`
}

func (e *Unstaked) Name() string   { return UnstakedName }
func (e *Unstaked) Topics() Topics { return Topics{Account: &e.Account, Target: &e.Data} }

type WeightedUnstaked struct {
	Account        tcr.Address  `json:"account"`
	Amount         *uint256.Int `json:"amount"`
	WeightedAmount *uint256.Int `json:"weightedAmount"`
	Total          *uint256.Int `json:"total"`
	WeightedTotal  *uint256.Int `json:"weightedTotal"`
	Data           tcr.TargetID `json:"data"`
}

func (e *WeightedUnstaked) Name() string   { return WeightedUnstakedName }
func (e *WeightedUnstaked) Topics() Topics { return Topics{Account: &e.Account, Target: &e.Data} }

// Deposited reports a custody credit. Balance is the account's custodied balance after it.
type Deposited struct {
	Account tcr.Address  `json:"account"`
	Amount  *uint256.Int `json:"amount"`
	Balance *uint256.Int `json:"balance"`
}

func (e *Deposited) Name() string   { return DepositedName }
func (e *Deposited) Topics() Topics { return Topics{Account: &e.Account} }

type Withdrawn struct {
	Account tcr.Address  `json:"account"`
	Amount  *uint256.Int `json:"amount"`
	Balance *uint256.Int `json:"balance"`
}

func (e *Withdrawn) Name() string   { return WithdrawnName }
func (e *Withdrawn) Topics() Topics { return Topics{Account: &e.Account} }

type OwnershipTransferred struct {
	Previous tcr.Address `json:"previous"`
	Next     tcr.Address `json:"next"`
}

func (e *OwnershipTransferred) Name() string   { return OwnershipTransferredName }
func (e *OwnershipTransferred) Topics() Topics { return Topics{Account: &e.Next} }

var factories = map[string]func() Event{
	StakingEnabledName:       func() Event { return &StakingEnabled{} },
	StakingDisabledName:      func() Event { return &StakingDisabled{} },
	StakedName:               func() Event { return &Staked{} },
	WeightedStakedName:       func() Event { return &WeightedStaked{} },
	UnstakedName:             func() Event { return &Unstaked{} },
	WeightedUnstakedName:     func() Event { return &WeightedUnstaked{} },
	DepositedName:            func() Event { return &Deposited{} },
	WithdrawnName:            func() Event { return &Withdrawn{} },
	OwnershipTransferredName: func() Event { return &OwnershipTransferred{} },
}

// IsKnown reports whether name is an event name.
func IsKnown(name string) bool {
	_, ok := factories[name]
	return ok
}

// Decode rebuilds an event from its name and JSON payload.
func Decode(name string, data []byte) (Event, error) {
	f, ok := factories[name]
	if !ok {
		return nil, errors.Errorf("unknown event %q", name)
	}
	ev := f()
	if err := json.Unmarshal(data, ev); err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return ev, nil
}

// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staking implements the target registry and the stake ledger.
package staking

import (
	"github.com/holiman/uint256"

	"github.com/Ministry-of-Decentralization/token-curation/builtin/solidity"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/staking/globalstats"
	"github.com/Ministry-of-Decentralization/token-curation/builtin/weighting"
	"github.com/Ministry-of-Decentralization/token-curation/log"
	"github.com/Ministry-of-Decentralization/token-curation/state"
	"github.com/Ministry-of-Decentralization/token-curation/tcr"
)

var logger = log.WithContext("pkg", "staking")

// Custody is the balance keeper stakes are reserved against.
type Custody interface {
	FreeBalanceOf(account tcr.Address) (*uint256.Int, error)
	Reserve(account tcr.Address, amount *uint256.Int) error
	Release(account tcr.Address, amount *uint256.Int) error
}

// Gate authorizes privileged calls.
type Gate interface {
	Require(caller tcr.Address) error
}

// Staking implements native methods of the staking contract.
type Staking struct {
	state    *state.State
	strategy weighting.Strategy
	gate     Gate
	custody  Custody

	targets    *solidity.Mapping[tcr.TargetID, *target]
	stakes     *solidity.Mapping[stakeKey, *record]
	accounts   *solidity.Mapping[tcr.Address, *record]
	stats      *globalstats.Service
	weightName *solidity.Bytes32
}

// New create a new instance.
func New(addr tcr.Address, state *state.State, strategy weighting.Strategy, gate Gate, custody Custody) *Staking {
	sctx := solidity.NewContext(addr, state)
	return &Staking{
		state:    state,
		strategy: strategy,
		gate:     gate,
		custody:  custody,

		targets:    solidity.NewMapping[tcr.TargetID, *target](sctx, slotTargets),
		stakes:     solidity.NewMapping[stakeKey, *record](sctx, slotStakes),
		accounts:   solidity.NewMapping[tcr.Address, *record](sctx, slotAccounts),
		stats:      globalstats.New(sctx),
		weightName: solidity.NewBytes32(sctx, slotWeighting),
	}
}

// Strategy returns the weighting strategy in use.
func (s *Staking) Strategy() weighting.Strategy {
	return s.strategy
}

// atomic runs fn on a checkpoint and reverts every write of fn when it fails.
func (s *Staking) atomic(fn func() error) error {
	checkpoint := s.state.NewCheckpoint()
	if err := fn(); err != nil {
		s.state.RevertTo(checkpoint)
		return err
	}
	return nil
}
